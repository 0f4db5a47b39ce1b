package repository

import "context"

// NLURepository tashqi NLU xizmatiga bitta chaqiruv
type NLURepository interface {
	// Infer prompt ni yuborib xom matnni qaytarish. Qayta urinish yo'q.
	Infer(ctx context.Context, prompt string) (string, error)
}
