package forms

import (
	"testing"
)

var testSchema = Schema{
	"full_name": {Required: true, MaxLen: 10},
	"email":     {Required: true, Kind: KindEmail},
	"subject":   {Required: true, Enum: []string{"Safari Experience", "Beach Holiday"}},
	"travelers": {Kind: KindPositiveInt},
	"date":      {Kind: KindDate},
	"consent":   {Kind: KindBool},
}

func TestValidateAccepts(t *testing.T) {
	errs := testSchema.Validate(map[string]string{
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
		"subject":   "Beach Holiday",
		"travelers": "4",
		"date":      "2026-06-15",
		"consent":   "on",
	})
	if errs != nil {
		t.Fatalf("valid submission rejected: %v", errs)
	}
}

func TestValidateRequired(t *testing.T) {
	errs := testSchema.Validate(map[string]string{})
	if errs == nil {
		t.Fatal("empty submission accepted")
	}
	for _, field := range []string{"full_name", "email", "subject"} {
		if errs[field] != "This field is required." {
			t.Errorf("field %s: got %q", field, errs[field])
		}
	}
	// Optional fields must not be flagged when blank.
	if _, ok := errs["travelers"]; ok {
		t.Error("blank optional field flagged")
	}
}

func TestValidateWhitespaceOnlyIsBlank(t *testing.T) {
	errs := testSchema.Validate(map[string]string{
		"full_name": "   ",
		"email":     "jane@example.com",
		"subject":   "Beach Holiday",
	})
	if errs == nil || errs["full_name"] == "" {
		t.Fatal("whitespace-only required field accepted")
	}
}

func TestValidateMaxLen(t *testing.T) {
	errs := testSchema.Validate(map[string]string{
		"full_name": "this name is far too long",
		"email":     "jane@example.com",
		"subject":   "Beach Holiday",
	})
	if errs["full_name"] != "Ensure this value has at most 10 characters." {
		t.Errorf("got %q", errs["full_name"])
	}
}

func TestValidateEnum(t *testing.T) {
	errs := testSchema.Validate(map[string]string{
		"full_name": "Jane",
		"email":     "jane@example.com",
		"subject":   "Space Travel",
	})
	if errs[`subject`] != `"Space Travel" is not a valid choice.` {
		t.Errorf("got %q", errs["subject"])
	}
}

func TestValidateEmail(t *testing.T) {
	errs := testSchema.Validate(map[string]string{
		"full_name": "Jane",
		"email":     "not-an-email",
		"subject":   "Beach Holiday",
	})
	if errs["email"] != "Enter a valid email address." {
		t.Errorf("got %q", errs["email"])
	}
}

func TestValidatePositiveInt(t *testing.T) {
	for _, bad := range []string{"0", "-3", "abc", "1.5"} {
		errs := testSchema.Validate(map[string]string{
			"full_name": "Jane",
			"email":     "jane@example.com",
			"subject":   "Beach Holiday",
			"travelers": bad,
		})
		if errs["travelers"] != "Enter a positive whole number." {
			t.Errorf("value %q: got %q", bad, errs["travelers"])
		}
	}
}

func TestValidateDate(t *testing.T) {
	errs := testSchema.Validate(map[string]string{
		"full_name": "Jane",
		"email":     "jane@example.com",
		"subject":   "Beach Holiday",
		"date":      "junk",
	})
	if errs["date"] != "Enter a valid date." {
		t.Errorf("got %q", errs["date"])
	}
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"on", "true", "1", "yes", "ON", " True "} {
		if !ParseBool(v) {
			t.Errorf("ParseBool(%q) = false", v)
		}
	}
	for _, v := range []string{"", "off", "false", "0"} {
		if ParseBool(v) {
			t.Errorf("ParseBool(%q) = true", v)
		}
	}
}

func TestParseUint(t *testing.T) {
	if got := ParseUint("12"); got == nil || *got != 12 {
		t.Errorf("ParseUint(12) = %v", got)
	}
	if got := ParseUint(""); got != nil {
		t.Errorf("blank should be nil, got %v", got)
	}
	if got := ParseUint("-4"); got != nil {
		t.Errorf("negative should be nil, got %v", got)
	}
	if got := ParseUint("junk"); got != nil {
		t.Errorf("garbage should be nil, got %v", got)
	}
}
