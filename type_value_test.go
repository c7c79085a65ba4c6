package farm

import "testing"

func TestValue_String(t *testing.T) {
	testCases := []struct {
		name string
		v    Value
		want string
	}{
		{"exalted", Exalted(150), "150.00 ex"},
		{"thousands", Exalted(1500000), "1,500,000.00 ex"},
		{"divine", V(2, DivineCode), "2.00 div"},
		{"chaos", V(0.5, ChaosCode), "0.50 c"},
		{"display rounding", Exalted(0.005), "0.01 ex"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValue_SignedString(t *testing.T) {
	if got := Exalted(15).SignedString(); got != "+15.00 ex" {
		t.Errorf("SignedString() = %q, want +15.00 ex", got)
	}
	if got := Exalted(-15).SignedString(); got != "-15.00 ex" {
		t.Errorf("SignedString() = %q, want -15.00 ex", got)
	}
	if got := Exalted(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
}

func TestValue_Arithmetic(t *testing.T) {
	sum := Exalted(10).Add(Exalted(5)).Sub(Exalted(3))
	wantValue(t, sum, "12")

	product := Exalted(1.5).Mul(Q(4))
	wantValue(t, product, "6")

	// the empty unit is weak: it adopts the other operand's unit
	mixed := Value{}.Add(Exalted(3))
	if mixed.Unit() != ExaltedCode {
		t.Errorf("Unit() = %q, want %q", mixed.Unit(), ExaltedCode)
	}
}
