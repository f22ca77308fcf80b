package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xushengqwer/discussion_service/myErrors"
)

func TestValidateCommunityName(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "合法的普通名称", input: "golang", wantErr: false},
		{name: "含数字和下划线", input: "go_dev_2024", wantErr: false},
		{name: "最短3个字符", input: "abc", wantErr: false},
		{name: "最长21个字符", input: strings.Repeat("a", 21), wantErr: false},
		{name: "纯下划线也合法", input: "___", wantErr: false},
		{name: "太短", input: "ab", wantErr: true},
		{name: "太长", input: strings.Repeat("a", 22), wantErr: true},
		{name: "空字符串", input: "", wantErr: true},
		{name: "含空格", input: "go lang", wantErr: true},
		{name: "含连字符", input: "go-lang", wantErr: true},
		{name: "含中文", input: "go社区", wantErr: true},
		{name: "含特殊符号", input: "go!lang", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCommunityName(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, myErrors.ErrCommunityNameInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
