package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/schoolvault/pkg/rule"
)

// resultForm 模拟成绩录入请求，用于测试 ValidateStruct.
type resultForm struct {
	Title string `rule:"required"`
	Slot  int    `rule:"gte=1"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := resultForm{Title: "Annual Sports Day", Slot: 2}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 Title
	missingTitle := resultForm{Title: "", Slot: 2}

	err = rule.ValidateStruct(missingTitle)
	if err == nil {
		t.Error("Expected error for invalid struct (missing title), got nil")
	}

	// 无效结构体：Slot 小于 1
	badSlot := resultForm{Title: "Annual Sports Day", Slot: 0}

	err = rule.ValidateStruct(badSlot)
	if err == nil {
		t.Error("Expected error for invalid struct (slot < 1), got nil")
	}
}

// TestErrors 测试 Errors 把验证错误转换为字段字典.
func TestErrors(t *testing.T) {
	err := rule.ValidateStruct(resultForm{Title: "", Slot: 0})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	fields := rule.Errors(err)
	if len(fields) != 2 {
		t.Errorf("Expected 2 field errors, got %d: %v", len(fields), fields)
	}

	if fields["Title"] != "required" {
		t.Errorf("Expected Title error tag 'required', got %q", fields["Title"])
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 email
	err := rule.ValidateVar("admin@school.edu", "required,email")
	if err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	// 无效 email
	err = rule.ValidateVar("invalid-email", "required,email")
	if err == nil {
		t.Error("Expected error for invalid email, got nil")
	}

	// 有效数字
	err = rule.ValidateVar(3, "gte=1")
	if err != nil {
		t.Errorf("Expected no error for valid number, got %v", err)
	}

	// 无效数字
	err = rule.ValidateVar(0, "gte=1")
	if err == nil {
		t.Error("Expected error for invalid number, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：学年格式 "2025-2026"
	err := rule.RegisterValidation("school_year", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(str) == 9 && str[4] == '-'
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	// 测试有效字符串
	err = rule.ValidateVar("2025-2026", "school_year")
	if err != nil {
		t.Errorf("Expected no error for valid school year, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("2025/2026", "school_year")
	if err == nil {
		t.Error("Expected error for invalid school year, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("title_required", "required,min=3")

	// 测试有效字符串
	err := rule.ValidateVar("abc", "title_required")
	if err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("ab", "title_required")
	if err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}
