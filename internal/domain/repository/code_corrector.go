package repository

import "context"

// CodeCorrector kodni tuzatuvchi tashqi xizmat
type CodeCorrector interface {
	Correct(ctx context.Context, code string) (string, error)
}
