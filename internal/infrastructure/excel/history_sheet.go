package excel

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/voice-assistant/internal/domain/entity"
	"github.com/yourusername/voice-assistant/internal/domain/repository"
)

const sheetName = "History"

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type historySheet struct{}

// NewHistorySheet yangi Excel history sheet yaratish
func NewHistorySheet() repository.HistorySheet {
	return &historySheet{}
}

// Export tarixni xlsx formatga yozish
func (h *historySheet) Export(ctx context.Context, exchanges []entity.Exchange) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]interface{}{"Question", "Answer", "Timestamp"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, ex := range exchanges {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{ex.Question, ex.Answer, ex.Timestamp.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	// Ustunlar kengligi
	_ = f.SetColWidth(sheetName, "A", "B", 60)
	_ = f.SetColWidth(sheetName, "C", "C", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseFromBytes byte array dan parse qilish
func (h *historySheet) ParseFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Exchange, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	// Birinchi sheet ni olish
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	// Header bo'lsa ustunlarni nomidan topamiz, bo'lmasa A/B/C
	columns, hasHeader := mapColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
	}

	var exchanges []entity.Exchange
	for _, row := range rows[startRow:] {
		question := strings.TrimSpace(cellAt(row, columns["question"]))
		answer := strings.TrimSpace(cellAt(row, columns["answer"]))
		if question == "" || answer == "" {
			continue
		}

		ex := entity.Exchange{Question: question, Answer: answer}
		if idx, ok := columns["timestamp"]; ok {
			ex.Timestamp = parseTime(cellAt(row, idx))
		}
		exchanges = append(exchanges, ex)
	}

	return exchanges, nil
}

// mapColumns header qatoridan ustun indekslarini aniqlash
func mapColumns(header []string) (map[string]int, bool) {
	columns := make(map[string]int)
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		switch {
		case contains(name, "question", "savol", "so'rov", "prompt", "q"):
			columns["question"] = i
		case contains(name, "answer", "javob", "response", "a"):
			columns["answer"] = i
		case contains(name, "timestamp", "time", "vaqt", "sana", "date"):
			columns["timestamp"] = i
		}
	}

	_, hasQ := columns["question"]
	_, hasA := columns["answer"]
	if hasQ && hasA {
		return columns, true
	}

	return map[string]int{"question": 0, "answer": 1, "timestamp": 2}, false
}

// contains ustun nomi kalit so'zlardan biriga teng yoki shu so'z bilan boshlanishini tekshirish
func contains(name string, keywords ...string) bool {
	for _, kw := range keywords {
		if name == kw || (len(kw) > 1 && strings.HasPrefix(name, kw)) {
			return true
		}
	}
	return false
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
