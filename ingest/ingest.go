// Package ingest 将外部账单文件（CSV、OFX/QFX）解析为待入库的交易记录
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fintrack/models"
)

var (
	ErrMissingColumns    = errors.New("CSV must contain columns")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Categorizer 根据描述返回类别
type Categorizer interface {
	Categorize(description string) string
}

// Format 文件格式
type Format string

const (
	FormatCSV Format = "csv"
	FormatOFX Format = "ofx"
)

// Result 解析结果，Errors 中每条形如 "Row N: ..."，不影响其他行
type Result struct {
	Transactions []models.Transaction
	Errors       []string
}

func (r *Result) addError(row int, format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", row, fmt.Sprintf(format, args...)))
}

// add 自动分类后加入结果
func (r *Result) add(userID uint, cat Categorizer, txn models.Transaction) {
	txn.UserID = userID
	txn.Description = strings.TrimSpace(txn.Description)
	txn.Category = cat.Categorize(txn.Description)
	r.Transactions = append(r.Transactions, txn)
}

// DetectFormat 按扩展名识别文件格式
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".ofx", ".qfx":
		return FormatOFX, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}
