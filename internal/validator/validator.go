// Package validator 負責發文內容的檢查。
//
// 檢查為純函數，不產生任何副作用：長度限制以字元（rune）計算，
// 敏感詞採用不分大小寫的子字串比對。子字串比對會誤傷無辜單字的
// 一部分，這是刻意保留的簡化做法，定位是最低限度的內容過濾，
// 不是精確的審核系統。
package validator

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxContentLength 是單則訊息的字元上限，與前端提示一致
const MaxContentLength = 500

var (
	ErrEmptyContent      = errors.New("内容不能为空")
	ErrContentTooLong    = errors.New("内容超过500字符限制")
	ErrDisallowedContent = errors.New("内容包含不合适词汇，请修改后提交")
)

// IsValidationError 判斷錯誤是否屬於內容檢查失敗（客戶端錯誤）
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrDisallowedContent)
}

type Validator struct {
	denylist []string
}

func New(denylist []string) *Validator {
	normalized := make([]string, 0, len(denylist))
	for _, term := range denylist {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			normalized = append(normalized, term)
		}
	}
	return &Validator{denylist: normalized}
}

// Validate 檢查內容並回傳去除前後空白後的結果。
// 長度限制在去除空白之前計算，與使用者在輸入框看到的上限一致。
func (v *Validator) Validate(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if len(trimmed) == 0 {
		return "", ErrEmptyContent
	}

	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", ErrContentTooLong
	}

	lowered := strings.ToLower(trimmed)
	for _, term := range v.denylist {
		if strings.Contains(lowered, term) {
			return "", ErrDisallowedContent
		}
	}

	return trimmed, nil
}
