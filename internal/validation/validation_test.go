package validation

import (
	"testing"
)

// inquiryForm mirrors the shape of the API's form payload so the
// custom rules can be exercised without the HTTP layer.
type inquiryForm struct {
	ParentName string `json:"parentName" validate:"required,min=2,max=100,person_name"`
	ChildAge   int    `json:"childAge" validate:"required,gte=2,lte=12"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phone"`
}

func (f *inquiryForm) Validate() error {
	return Struct(f)
}

func validForm() inquiryForm {
	return inquiryForm{
		ParentName: "Jane Doe",
		ChildAge:   5,
		Email:      "jane@example.com",
		Phone:      "+81-90-1234-5678",
	}
}

func TestStructAcceptsValidForm(t *testing.T) {
	f := validForm()
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestPersonNameRule(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "latin name", value: "Jane Doe", wantErr: false},
		{name: "name with apostrophe", value: "Mary O'Brien", wantErr: false},
		{name: "hiragana", value: "やまだ はなこ", wantErr: false},
		{name: "katakana with long vowel", value: "スミス ジョーン", wantErr: false},
		{name: "kanji with ideographic space", value: "山田　花子", wantErr: false},
		{name: "digits rejected", value: "Jane123", wantErr: true},
		{name: "angle brackets rejected", value: "<Jane>", wantErr: true},
		{name: "too short", value: "J", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.ParentName = tt.value

			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() with parentName=%q error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestPhoneRule(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "international", value: "+81-90-1234-5678", wantErr: false},
		{name: "domestic with parens", value: "(090) 1234 5678", wantErr: false},
		{name: "too short", value: "12345", wantErr: true},
		{name: "too long", value: "123456789012345678901", wantErr: true},
		{name: "letters", value: "phone1234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.Phone = tt.value

			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() with phone=%q error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestAgeRange(t *testing.T) {
	tests := []struct {
		age     int
		wantErr bool
	}{
		{age: 1, wantErr: true},
		{age: 2, wantErr: false},
		{age: 12, wantErr: false},
		{age: 13, wantErr: true},
	}

	for _, tt := range tests {
		f := validForm()
		f.ChildAge = tt.age

		err := f.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate() with childAge=%d error = %v, wantErr %v", tt.age, err, tt.wantErr)
		}
	}
}

func TestErrorsAccumulateInFieldOrder(t *testing.T) {
	f := &inquiryForm{} // everything missing

	err := f.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}

	msg, fieldErrors := extractValidationError(err)
	if msg != "Validation failed" {
		t.Errorf("message = %q, want %q", msg, "Validation failed")
	}

	wantFields := []string{"parentName", "childAge", "email", "phone"}
	if len(fieldErrors) != len(wantFields) {
		t.Fatalf("got %d field errors, want %d: %+v", len(fieldErrors), len(wantFields), fieldErrors)
	}
	for i, want := range wantFields {
		if fieldErrors[i].Field != want {
			t.Errorf("error %d field = %q, want %q", i, fieldErrors[i].Field, want)
		}
		if fieldErrors[i].Message != "is required" {
			t.Errorf("error %d message = %q, want %q", i, fieldErrors[i].Message, "is required")
		}
	}
}
