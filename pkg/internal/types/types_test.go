package types_test

import (
	"testing"

	"github.com/yeisme/schoolvault/pkg/internal/types"
	"github.com/yeisme/schoolvault/pkg/rule"
)

// TestCreateRequestRequiredFields 测试各创建请求的必填字段约束.
func TestCreateRequestRequiredFields(t *testing.T) {
	cases := []struct {
		name  string
		req   any
		field string
	}{
		{"album missing description", &types.CreateAlbumRequest{Title: "Sports Day"}, "Description"},
		{"teacher missing subject", &types.CreateTeacherRequest{Name: "Li", Email: "li@example.edu"}, "Subject"},
		{"result missing grade", &types.CreateResultRequest{Title: "Term 1"}, "Grade"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := rule.ValidateStruct(c.req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if _, ok := rule.Errors(err)[c.field]; !ok {
				t.Errorf("expected %s in field errors, got %v", c.field, rule.Errors(err))
			}
		})
	}
}

// TestCreateRequestValid 测试合法请求通过校验.
func TestCreateRequestValid(t *testing.T) {
	reqs := []any{
		&types.CreateAlbumRequest{Title: "Sports Day", Description: "Annual sports day"},
		&types.CreateTeacherRequest{Name: "Li", Subject: "Math", Email: "li@example.edu"},
		&types.CreateResultRequest{Title: "Term 1", Grade: "Grade 5"},
	}

	for _, req := range reqs {
		if err := rule.ValidateStruct(req); err != nil {
			t.Errorf("valid request rejected: %T: %v", req, err)
		}
	}
}
