package exporters

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ondrovic/edge-profiles/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mocker stands in for the JSON formatter.
type Mocker struct {
	mock.Mock
}

func (m *Mocker) FormatAsJson(v interface{}) (string, error) {
	args := m.Called(v)
	return args.String(0), args.Error(1)
}

var sampleResponse = types.Response{Result: []types.Result{{
	Title:    "Work",
	SubTitle: "Launch Edge with profile: Work",
	IcoPath:  "Images/app.png",
	JsonRPCAction: &types.JsonRPCAction{
		Method:     "launch_profile",
		Parameters: []any{"Profile 1"},
	},
}}}

func TestDisplayResponse_Quiet(t *testing.T) {
	// Arrange
	mockFormatter := new(Mocker)
	var buf bytes.Buffer

	// Act
	err := DisplayResponse(&buf, true, sampleResponse, mockFormatter.FormatAsJson)

	// Assert
	assert.NoError(t, err)
	assert.JSONEq(t, `{"result":[{"Title":"Work","SubTitle":"Launch Edge with profile: Work","IcoPath":"Images/app.png","JsonRPCAction":{"method":"launch_profile","parameters":["Profile 1"]}}]}`, buf.String())
	mockFormatter.AssertNotCalled(t, "FormatAsJson", mock.Anything)
}

func TestDisplayResponse_Pretty(t *testing.T) {
	mockFormatter := new(Mocker)
	mockFormatter.On("FormatAsJson", sampleResponse).Return(`{"result":[{"Title":"Work"}]}`, nil)
	var buf bytes.Buffer

	err := DisplayResponse(&buf, false, sampleResponse, mockFormatter.FormatAsJson)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Work")
	mockFormatter.AssertExpectations(t)
}

func TestDisplayResponse_FormatError(t *testing.T) {
	mockFormatter := new(Mocker)
	mockFormatter.On("FormatAsJson", sampleResponse).Return("", errors.New("formatting error"))

	err := DisplayResponse(&bytes.Buffer{}, false, sampleResponse, mockFormatter.FormatAsJson)

	assert.EqualError(t, err, "error while attempting to format results: formatting error")
	mockFormatter.AssertExpectations(t)
}

func TestDisplayProfiles_Quiet(t *testing.T) {
	var buf bytes.Buffer
	ps := []types.Profile{{DisplayName: "Work", DirectoryName: "Profile 1"}}

	err := DisplayProfiles(&buf, true, ps, new(Mocker).FormatAsJson)

	assert.NoError(t, err)
	assert.JSONEq(t, `[{"displayName":"Work","directoryName":"Profile 1"}]`, buf.String())
}

func TestDisplayProfiles_Pretty(t *testing.T) {
	ps := []types.Profile{{DisplayName: "Work", DirectoryName: "Profile 1"}}
	mockFormatter := new(Mocker)
	mockFormatter.On("FormatAsJson", ps).Return(`[{"displayName":"Work"}]`, nil)
	var buf bytes.Buffer

	err := DisplayProfiles(&buf, false, ps, mockFormatter.FormatAsJson)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "displayName")
	mockFormatter.AssertExpectations(t)
}
