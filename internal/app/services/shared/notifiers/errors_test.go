package notifiers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermanentAndTemporaryClassification(t *testing.T) {
	base := errors.New("provider rejected number")

	assert.True(t, IsPermanent(Permanent(base)))
	assert.False(t, IsTemporary(Permanent(base)))

	assert.True(t, IsTemporary(Temporary(base)))
	assert.False(t, IsPermanent(Temporary(base)))
}

func TestUnclassifiedErrorsDefaultToTemporary(t *testing.T) {
	err := errors.New("connection reset by peer")

	assert.True(t, IsTemporary(err))
	assert.False(t, IsPermanent(err))
}

func TestNilErrorIsNeitherKind(t *testing.T) {
	assert.Nil(t, Permanent(nil))
	assert.Nil(t, Temporary(nil))
	assert.False(t, IsPermanent(nil))
	assert.False(t, IsTemporary(nil))
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	inner := Permanent(errors.New("invalid recipient"))
	wrapped := fmt.Errorf("whatsapp send: %w", inner)

	assert.True(t, IsPermanent(wrapped))
}
