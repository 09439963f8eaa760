package prediction

import (
	"reflect"
	"testing"
)

func TestSplitAdvice(t *testing.T) {
	text := "• Get plenty of rest\n• Stay hydrated\n\n- Wash hands frequently\n  * Use humidifier  "
	got := SplitAdvice(text)
	want := []string{
		"Get plenty of rest",
		"Stay hydrated",
		"Wash hands frequently",
		"Use humidifier",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitAdvice = %v, want %v", got, want)
	}

	if got := SplitAdvice(""); len(got) != 0 {
		t.Fatalf("empty text should yield empty list, got %v", got)
	}
}

func TestValidateInput(t *testing.T) {
	valid := func() PredictInput {
		return PredictInput{
			Name:   "Alex",
			Age:    30,
			Gender: "M",
			Symptoms: []SymptomInput{
				{ID: 1, Severity: 5},
			},
		}
	}

	in := valid()
	if err := validateInput(&in); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*PredictInput)
	}{
		{"empty name", func(in *PredictInput) { in.Name = "  " }},
		{"negative age", func(in *PredictInput) { in.Age = -1 }},
		{"age too high", func(in *PredictInput) { in.Age = 121 }},
		{"bad gender", func(in *PredictInput) { in.Gender = "X" }},
		{"no symptoms", func(in *PredictInput) { in.Symptoms = nil }},
		{"severity too low", func(in *PredictInput) { in.Symptoms[0].Severity = 0 }},
		{"severity too high", func(in *PredictInput) { in.Symptoms[0].Severity = 11 }},
		{"bad onset", func(in *PredictInput) { in.Symptoms[0].Onset = "SLOWLY" }},
		{"bad sleep", func(in *PredictInput) {
			h := 25
			in.Lifestyle = &LifestyleInput{SleepHours: &h}
		}},
		{"bad stress", func(in *PredictInput) {
			s := 0
			in.Lifestyle = &LifestyleInput{StressLevel: &s}
		}},
		{"bad diet", func(in *PredictInput) {
			in.Lifestyle = &LifestyleInput{Diet: "CARNIVORE"}
		}},
	}
	for _, tc := range cases {
		in := valid()
		tc.mutate(&in)
		err := validateInput(&in)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %T", tc.name, err)
		}
	}
}
