package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fintrack/models"

	"github.com/shopspring/decimal"
)

var requiredColumns = []string{"date", "amount", "description"}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseCSV 解析带表头的 CSV，必须包含 date、amount、description 列
// 单行错误记录在 Result.Errors 中，不会中断整个文件
func ParseCSV(r io.Reader, userID uint, cat Categorizer) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(requiredColumns, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		columns[name] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	result := &Result{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.addError(row, "%v", err)
			continue
		}

		field := func(name string) string {
			i := columns[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		date, err := ParseDate(field("date"))
		if err != nil {
			result.addError(row, "%v", err)
			continue
		}
		amount, err := ParseAmount(field("amount"))
		if err != nil {
			result.addError(row, "%v", err)
			continue
		}
		description := field("description")
		if description == "" {
			result.addError(row, "Empty description")
			continue
		}

		result.add(userID, cat, models.Transaction{
			Date:        date,
			Amount:      amount,
			Description: description,
		})
	}
	return result, nil
}

// ParseDate 依次尝试常见日期格式
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DayOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseAmount 解析金额，允许货币符号、千分位和会计记法的括号负数
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = strings.TrimSuffix(strings.TrimPrefix(clean, "("), ")")
	}
	if clean == "" {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
