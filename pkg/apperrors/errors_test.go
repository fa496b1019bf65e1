package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorChain(t *testing.T) {
	root := New("catalog error")
	notFound := root.New("not found").SetStatusCode(http.StatusNotFound)
	partition := notFound.New("partition not found")

	err := partition.Msg("partition p1 not found")
	assert.ErrorIs(t, err, partition)
	assert.ErrorIs(t, err, notFound)
	assert.ErrorIs(t, err, root)
	assert.Equal(t, "partition p1 not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.StatusCode())

	alreadyExists := root.New("already exists")
	assert.NotErrorIs(t, err, alreadyExists)
}

func TestErrorCauses(t *testing.T) {
	root := New("validation failed")
	cause := fmt.Errorf("name is empty")

	err := root.Err(cause)
	assert.ErrorIs(t, err, root)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "validation failed", err.Error())
	assert.Equal(t, "validation failed: name is empty", err.ErrorAll())

	expanded := New("invalid request").SetExpandError(true).Err(cause, nil)
	assert.Equal(t, "invalid request: name is empty", expanded.Error())

	withMsg := root.MsgErr("bad partition", cause, errors.New("bad type"))
	assert.Equal(t, "bad partition: name is empty; bad type", withMsg.ErrorAll())
	assert.ErrorIs(t, withMsg, root)
}

func TestErrorAs(t *testing.T) {
	root := New("catalog error")
	var wrapped error = fmt.Errorf("load table: %w", root.Msg("table t1 not found"))

	var ae Error
	if assert.True(t, errors.As(wrapped, &ae)) {
		assert.Equal(t, "table t1 not found", ae.Error())
		assert.ErrorIs(t, ae, root)
	}
}
