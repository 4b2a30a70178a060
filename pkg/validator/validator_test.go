package validator

import "testing"

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,min=3,max=10"`
	Duration int    `validate:"required,min=1"`
	Days     []int  `validate:"omitempty,dive,gte=0,lte=6"`
}

func TestValidate(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			req:     sampleRequest{Email: "a@b.com", Name: "Alice", Duration: 30, Days: []int{0, 6}},
			wantErr: false,
		},
		{
			name:    "missing required fields",
			req:     sampleRequest{},
			wantErr: true,
		},
		{
			name:    "bad email",
			req:     sampleRequest{Email: "not-an-email", Name: "Alice", Duration: 30},
			wantErr: true,
		},
		{
			name:    "name too short",
			req:     sampleRequest{Email: "a@b.com", Name: "Al", Duration: 30},
			wantErr: true,
		},
		{
			name:    "weekday out of range",
			req:     sampleRequest{Email: "a@b.com", Name: "Alice", Duration: 30, Days: []int{7}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "bad", Name: "Al"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := cv.FormatValidationErrors(err)
	if _, ok := formatted["Email"]; !ok {
		t.Error("expected Email in formatted errors")
	}
	if _, ok := formatted["Name"]; !ok {
		t.Error("expected Name in formatted errors")
	}
	if _, ok := formatted["Duration"]; !ok {
		t.Error("expected Duration in formatted errors")
	}
}
