package internal

import (
	"fmt"
)

type Config struct {
	Generator         string `env:"RSMF_GENERATOR,default=rsmf-lab"`
	CustodianDisplay  string `env:"CUSTODIAN_DISPLAY"`
	CustodianEmail    string `env:"CUSTODIAN_EMAIL"`
	Validate          bool   `env:"RSMF_VALIDATE,default=false"`
	BadgerFilepath    string `env:"BADGER_FILEPATH"`
	BlugeFilepath     string `env:"BLUGE_FILEPATH"`
	RedactionFilepath string `env:"REDACTION_FILEPATH"`
	CharReplacement   string `env:"CHARACTER_REPLACEMENT,default=*"`
	LogLevel          string `env:"LOG_LEVEL,default=INFO"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
