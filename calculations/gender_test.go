package calculations

import (
	"errors"
	"testing"

	"porygon/database"
)

func TestGBGender(t *testing.T) {
	cases := []struct {
		rate     int
		attack   int
		expected database.Gender
	}{
		{database.GenderRateGenderless, 0, database.GenderGenderless},
		{database.GenderRateAllMale, 0, database.GenderMale},
		{database.GenderRateAllFemale, 15, database.GenderFemale},
		{1, 1, database.GenderFemale},
		{1, 2, database.GenderMale},
		{2, 3, database.GenderFemale},
		{2, 4, database.GenderMale},
		{4, 6, database.GenderFemale},
		{4, 7, database.GenderMale},
		{6, 11, database.GenderFemale},
		{6, 12, database.GenderMale},
	}
	for _, c := range cases {
		got, err := GBGender(c.rate, c.attack)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.expected {
			t.Errorf("rate %d attack %d: expected %s, got %s", c.rate, c.attack, c.expected, got)
		}
	}
	if _, err := GBGender(4, 16); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestModernGender(t *testing.T) {
	cases := []struct {
		rate     int
		pid      uint32
		expected database.Gender
	}{
		{database.GenderRateGenderless, 0, database.GenderGenderless},
		{database.GenderRateAllMale, 0, database.GenderMale},
		{database.GenderRateAllFemale, 0xFF, database.GenderFemale},
		{1, 30, database.GenderFemale},
		{1, 31, database.GenderMale},
		{4, 0xABCD007E, database.GenderFemale},
		{4, 0xABCD007F, database.GenderMale},
		{6, 190, database.GenderFemale},
		{6, 191, database.GenderMale},
	}
	for _, c := range cases {
		if got := ModernGender(c.rate, c.pid); got != c.expected {
			t.Errorf("rate %d pid %#x: expected %s, got %s", c.rate, c.pid, c.expected, got)
		}
	}
}
