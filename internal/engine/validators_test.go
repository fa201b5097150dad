package engine

import "testing"

func TestValidBotUsername(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"a123bot", true},
		{"a12bot", false},
		{"mybot", false},
		{"shop_orders_bot", true},
		{"ShopOrdersBot", false}, // suffix is case-sensitive
		{"_leadingbot", false},
		{"9numberbot", false},
		{"has spacebot", false},
		{"кириллицаbot", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ValidBotUsername(tt.value); got != tt.want {
				t.Errorf("ValidBotUsername(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		value string
		want  int
		ok    bool
	}{
		{"1", 1, true},
		{"5", 5, true},
		{" 3 ", 3, true},
		{"0", 0, false},
		{"6", 0, false},
		{"-1", 0, false},
		{"4.5", 0, false},
		{"пять", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := ParseRating(tt.value)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseRating(%q) = (%d, %v), want (%d, %v)", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIsCancelToken(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Отмена", true},
		{"отмена", true},
		{"ОТМЕНА", true},
		{" отмена ", true},
		{"cancel", false},
		{"отменить", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := IsCancelToken(tt.value); got != tt.want {
				t.Errorf("IsCancelToken(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
