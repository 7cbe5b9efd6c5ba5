package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	return New([]string{"fuck", "shit", "ass"})
}

func TestValidateEmptyContent(t *testing.T) {
	v := newTestValidator()

	for _, content := range []string{"", "   ", "\n\t  \n"} {
		_, err := v.Validate(content)
		require.ErrorIs(t, err, ErrEmptyContent, "content %q", content)
	}
}

func TestValidateTooLong(t *testing.T) {
	v := newTestValidator()

	_, err := v.Validate(strings.Repeat("a", MaxContentLength+1))
	require.ErrorIs(t, err, ErrContentTooLong)

	// 長度在去除空白之前計算：內文恰好在上限內，但加上前後空白就超標
	padded := " " + strings.Repeat("a", MaxContentLength) + " "
	_, err = v.Validate(padded)
	require.ErrorIs(t, err, ErrContentTooLong)

	// 恰好達到上限可以通過
	trimmed, err := v.Validate(strings.Repeat("a", MaxContentLength))
	require.NoError(t, err)
	require.Len(t, trimmed, MaxContentLength)
}

func TestValidateTooLongCountsRunes(t *testing.T) {
	v := newTestValidator()

	// 多位元組字元以字元數計算，不是位元組數
	content := strings.Repeat("樹", MaxContentLength)
	trimmed, err := v.Validate(content)
	require.NoError(t, err)
	require.Equal(t, content, trimmed)

	_, err = v.Validate(strings.Repeat("樹", MaxContentLength+1))
	require.ErrorIs(t, err, ErrContentTooLong)
}

func TestValidateDisallowed(t *testing.T) {
	v := newTestValidator()

	cases := []string{
		"fuck this",
		"FUCK this",
		"what the FuCk",
		"bullshit everywhere",
	}
	for _, content := range cases {
		_, err := v.Validate(content)
		require.ErrorIs(t, err, ErrDisallowedContent, "content %q", content)
	}
}

func TestValidateDisallowedSubstringFalsePositive(t *testing.T) {
	v := newTestValidator()

	// 子字串比對會誤傷普通單字，這是已知且接受的行為
	_, err := v.Validate("a classic assignment")
	require.ErrorIs(t, err, ErrDisallowedContent)
}

func TestValidateTrimsContent(t *testing.T) {
	v := newTestValidator()

	trimmed, err := v.Validate("  hello world  \n")
	require.NoError(t, err)
	require.Equal(t, "hello world", trimmed)
}

func TestNewNormalizesDenylist(t *testing.T) {
	v := New([]string{" FUCK ", "", "Shit"})

	_, err := v.Validate("fuck")
	require.ErrorIs(t, err, ErrDisallowedContent)
	_, err = v.Validate("shit")
	require.ErrorIs(t, err, ErrDisallowedContent)
	_, err = v.Validate("hello")
	require.NoError(t, err)
}

func TestIsValidationError(t *testing.T) {
	require.True(t, IsValidationError(ErrEmptyContent))
	require.True(t, IsValidationError(ErrContentTooLong))
	require.True(t, IsValidationError(ErrDisallowedContent))
	require.False(t, IsValidationError(nil))
}
