package engine

import "github.com/brianvoe/gofakeit/v7"

// WordSource returns one random lowercase word with no punctuation per call.
type WordSource interface {
	Word() string
}

type fakerWords struct {
	faker *gofakeit.Faker
}

// NewWordSource returns the default word source. A zero seed produces
// nondeterministic words; any other seed makes the sequence reproducible.
func NewWordSource(seed uint64) WordSource {
	return &fakerWords{faker: gofakeit.New(seed)}
}

func (s *fakerWords) Word() string {
	return s.faker.Word()
}
