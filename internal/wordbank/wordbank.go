package wordbank

import (
	"errors"
	"math/rand"
)

// ErrUnknownCategory is returned when a category name is not in the bank
var ErrUnknownCategory = errors.New("unknown word category")

// Bank is a static mapping from category name to candidate words.
// Word selection uses the injected random source so games can be
// reproduced with a fixed seed.
type Bank struct {
	order []string
	words map[string][]string
	rng   *rand.Rand
}

// New returns a bank with the built-in categories
func New(rng *rand.Rand) *Bank {
	return NewWithCategories(rng, defaultOrder, defaultWords)
}

// NewWithCategories returns a bank over custom word lists.
// Categories keep the given order for stable menu numbering.
func NewWithCategories(rng *rand.Rand, order []string, words map[string][]string) *Bank {
	return &Bank{
		order: order,
		words: words,
		rng:   rng,
	}
}

// Categories returns category names in declaration order
func (b *Bank) Categories() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// RandomWord returns a uniformly random word from the category
func (b *Bank) RandomWord(category string) (string, error) {
	list, ok := b.words[category]
	if !ok || len(list) == 0 {
		return "", ErrUnknownCategory
	}
	return list[b.rng.Intn(len(list))], nil
}

var defaultOrder = []string{"fruits", "animals", "countries", "vegetables"}

var defaultWords = map[string][]string{
	"fruits": {
		"apple", "banana", "mango", "strawberry", "orange", "grape", "pineapple",
		"apricot", "lemon", "coconut", "watermelon", "cherry", "papaya", "berry",
		"peach", "lychee", "muskmelon", "kiwi", "pomegranate", "dragonfruit",
	},
	"animals": {
		"elephant", "giraffe", "monkey", "zebra", "lion", "tiger", "bear",
		"wolf", "fox", "deer", "rabbit", "squirrel", "dolphin", "whale",
		"shark", "eagle", "hawk", "snake", "turtle", "crocodile",
	},
	"countries": {
		"india", "australia", "japan", "brazil", "canada", "mexico",
		"france", "germany", "italy", "spain", "egypt", "china",
		"russia", "kenya", "nigeria", "peru", "chile", "sweden", "finland", "norway",
	},
	"vegetables": {
		"carrot", "potato", "tomato", "cabbage", "spinach", "broccoli",
		"cauliflower", "cucumber", "eggplant", "pepper", "celery",
		"lettuce", "radish", "onion", "garlic", "pumpkin", "zucchini", "squash",
	},
}
