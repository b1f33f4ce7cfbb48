package util

import (
	"reflect"
	"testing"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertEqual(t *testing.T, expected, got interface{}) bool {
	return AssertExpected(t, expected, got)
}

func AssertTrue(t *testing.T, got interface{}) bool {
	return AssertExpected(t, true, got)
}

func AssertFalse(t *testing.T, got interface{}) bool {
	return AssertExpected(t, false, got)
}

func AssertNoError(t *testing.T, got error) bool {
	if got != nil {
		t.Errorf("error, expected no error, got: %v\n", got)
		return false
	}
	return true
}

func AssertError(t *testing.T, got error) bool {
	if got == nil {
		t.Errorf("error, expected an error, got nil\n")
		return false
	}
	return true
}
