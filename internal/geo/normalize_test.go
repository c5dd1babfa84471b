package geo

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"France", "france"},
		{"Étas-Unis", "etas unis"},
		{"états-unis", "etats unis"},
		{"Côte d'Ivoire", "cote d ivoire"},
		{"  Guinée-Bissau ", "guinee bissau"},
		{"TÜRKIYE", "turkiye"},
		{"Timor-Leste", "timor leste"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"République démocratique du Congo",
		"Côte d'Ivoire",
		"SÃO TOMÉ",
		"etats unis",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
