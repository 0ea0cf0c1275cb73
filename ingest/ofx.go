package ingest

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"fintrack/models"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
)

var (
	severityPattern = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagPattern  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX 修正银行导出文件中常见的格式问题
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityPattern.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagPattern.ReplaceAllString(content, "$1>")
}

// ParseOFX 解析 OFX/QFX 对账单中的银行与信用卡交易，金额保留原始符号
func ParseOFX(r io.Reader, userID uint, cat Categorizer) (*Result, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("读取 OFX 文件失败: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("解析 OFX 文件失败: %w", err)
	}

	var statements [][]ofxgo.Transaction
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			statements = append(statements, stmt.BankTranList.Transactions)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			statements = append(statements, stmt.BankTranList.Transactions)
		}
	}

	result := &Result{}
	row := 0
	for _, txns := range statements {
		for _, tx := range txns {
			row++
			description := ofxDescription(tx)
			if description == "" {
				result.addError(row, "Empty description")
				continue
			}
			result.add(userID, cat, models.Transaction{
				Date:        models.DayOf(tx.DtPosted.Time),
				Amount:      decimal.NewFromBigRat(&tx.TrnAmt.Rat, 2),
				Description: description,
			})
		}
	}
	return result, nil
}

// ofxDescription 优先使用 PAYEE，其次 NAME，最后 MEMO
func ofxDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && strings.TrimSpace(string(tx.Payee.Name)) != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	if name := strings.TrimSpace(string(tx.Name)); name != "" {
		return name
	}
	return strings.TrimSpace(string(tx.Memo))
}
