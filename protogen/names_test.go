package protogen

import "testing"

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"one", "One"},
		{"one_two", "OneTwo"},
		{"_my_field_name_2", "XMyFieldName_2"},
		{"Something_Capped", "Something_Capped"},
		{"my_Name", "My_Name"},
		{"OneTwo", "OneTwo"},
		{"_", "X"},
		{"_a_", "XA_"},
		{"one.two", "OneTwo"},
		{"one.Two", "One_Two"},
		{"one_two.three_four", "OneTwoThreeFour"},
		{"SCREAMING_SNAKE_CASE", "SCREAMING_SNAKE_CASE"},
		{"camelCase", "CamelCase"},
		{"go2proto", "Go2Proto"},
	}
	for _, tc := range tests {
		if got := camelCase(tc.in); got != tc.want {
			t.Errorf("camelCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLowerCamelCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my_field", "myField"},
		{"X", "x"},
		{"some_id_2", "someId_2"},
	}
	for _, tc := range tests {
		if got := lowerCamelCase(tc.in); got != tc.want {
			t.Errorf("lowerCamelCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEscapeIdent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"type", "`type`"},
		{"MyMessage", "MyMessage"},
		{"object", "`object`"},
		{"value", "value"},
		{"", "``"},
	}
	for _, tc := range tests {
		if got := escapeIdent(tc.in); got != tc.want {
			t.Errorf("escapeIdent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanIdentName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"hello", "hello"},
		{"hello-world!!", "hello_world__"},
		{"hello world", "hello_world"},
	}
	for _, tc := range tests {
		if got := cleanIdentName(tc.in); got != tc.want {
			t.Errorf("cleanIdentName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"dir/foo.proto", "foo"},
		{"foo.proto", "foo"},
		{"a/b/c.proto", "c"},
	}
	for _, tc := range tests {
		if got := baseName(tc.in); got != tc.want {
			t.Errorf("baseName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
