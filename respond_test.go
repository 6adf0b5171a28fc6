package result_test

import (
	"encoding/json"
	"net/http"
	"testing"

	result "github.com/fabiorbarbosa/simplify-result"
	"github.com/stretchr/testify/require"
)

func TestToResponse_Success(t *testing.T) {
	resp := result.ToResponse(result.Success("x"))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "x", resp.Body)
	require.Empty(t, resp.ActionName)
	require.Nil(t, resp.RouteValues)
}

func TestToResponse_SuccessWrapInData(t *testing.T) {
	resp := result.ToResponse(result.Success("x", result.WrapInData()))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, result.DataEnvelope{Data: "x"}, resp.Body)

	body, err := json.Marshal(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"data":"x"}`, string(body))
}

func TestToResponse_SuccessStatusOverride(t *testing.T) {
	resp := result.ToResponse(result.Success("x", result.WithStatus(http.StatusAccepted)))

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "x", resp.Body)
}

func TestToResponse_SuccessOverrideAndEnvelope(t *testing.T) {
	resp := result.ToResponse(result.Success("x", result.WithStatus(http.StatusAccepted), result.WrapInData()))

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, result.DataEnvelope{Data: "x"}, resp.Body)
}

func TestToResponse_NoContent(t *testing.T) {
	resp := result.ToResponse(result.NoContent[string]())

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Nil(t, resp.Body)
}

func TestToResponse_Created(t *testing.T) {
	out, err := result.Created("x", "GetResource", map[string]any{"id": 7})
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "x", resp.Body)
	require.Equal(t, "GetResource", resp.ActionName)
	require.Equal(t, map[string]any{"id": 7}, resp.RouteValues)
}

func TestToResponse_FailureEnveloped(t *testing.T) {
	out, err := result.FailureMsg[string](result.CategoryFailure, "boom")
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, result.ErrorEnvelope{Errors: []string{"boom"}}, resp.Body)

	body, marshalErr := json.Marshal(resp.Body)
	require.NoError(t, marshalErr)
	require.JSONEq(t, `{"errors":["boom"]}`, string(body))
}

func TestToResponse_NotFoundBareList(t *testing.T) {
	out, err := result.NotFound[string]("missing")
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, []string{"missing"}, resp.Body)

	body, marshalErr := json.Marshal(resp.Body)
	require.NoError(t, marshalErr)
	require.JSONEq(t, `["missing"]`, string(body))
}

func TestToResponse_ValidationBareList(t *testing.T) {
	out, err := result.ValidationError[string]([]string{"name is required"})
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Equal(t, []string{"name is required"}, resp.Body)
}

func TestToResponse_ValidationEmptyFallsBackToValue(t *testing.T) {
	// A Validation outcome with zero errors falls back to the value, which
	// the failure factories never populate, so the body is nil.
	out, err := result.ValidationError[string]([]string{})
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	require.Nil(t, resp.Body)
}

func TestToResponse_ConflictBareList(t *testing.T) {
	out, err := result.Conflict[string]()
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, []string{result.DefaultConflictMessage}, resp.Body)
}

func TestToResponse_UnauthorizedEnveloped(t *testing.T) {
	out, err := result.Unauthorized[string]("nope")
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, result.ErrorEnvelope{Errors: []string{"nope"}}, resp.Body)

	body, marshalErr := json.Marshal(resp.Body)
	require.NoError(t, marshalErr)
	require.JSONEq(t, `{"errors":["nope"]}`, string(body))
}

func TestToResponse_EnvelopeAsymmetry(t *testing.T) {
	// Failure and Unauthorized envelope the list; NotFound and Conflict do
	// not. The asymmetry is load-bearing wire behavior.
	enveloped := []result.Category{result.CategoryFailure, result.CategoryUnauthorized}
	bare := []result.Category{result.CategoryNotFound, result.CategoryConflict}

	for _, category := range enveloped {
		t.Run(string(category), func(t *testing.T) {
			out, err := result.Failure[string](category, []string{"boom"})
			require.NoError(t, err)
			require.IsType(t, result.ErrorEnvelope{}, result.ToResponse(out).Body)
		})
	}

	for _, category := range bare {
		t.Run(string(category), func(t *testing.T) {
			out, err := result.Failure[string](category, []string{"boom"})
			require.NoError(t, err)
			require.IsType(t, []string{}, result.ToResponse(out).Body)
		})
	}
}

func TestToResponse_FailureEmptyErrors(t *testing.T) {
	out, err := result.Failure[string](result.CategoryFailure, []string{})
	require.NoError(t, err)

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, marshalErr := json.Marshal(resp.Body)
	require.NoError(t, marshalErr)
	require.JSONEq(t, `{"errors":[]}`, string(body))
}

func TestToResponse_DefaultArm(t *testing.T) {
	// The zero-value Outcome matches no table arm and takes the fallback.
	var out result.Outcome[string]

	resp := result.ToResponse(out)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Nil(t, resp.Body)
}

func TestToResponse_Idempotent(t *testing.T) {
	outcomes := []result.Outcome[string]{
		result.Success("x", result.WithStatus(http.StatusAccepted), result.WrapInData()),
		result.NoContent[string](),
	}

	created, err := result.Created("x", "GetResource", map[string]any{"id": 7})
	require.NoError(t, err)
	outcomes = append(outcomes, created)

	failed, err := result.FailureMsg[string](result.CategoryFailure, "boom")
	require.NoError(t, err)
	outcomes = append(outcomes, failed)

	for _, out := range outcomes {
		first := result.ToResponse(out)
		second := result.ToResponse(out)
		require.Equal(t, first, second)
	}
}

func TestToResponse_ResponseIsDetached(t *testing.T) {
	// Mutating a returned response must not leak into the outcome or into
	// later translations.
	out, err := result.Created("x", "GetResource", map[string]any{"id": 7})
	require.NoError(t, err)

	first := result.ToResponse(out)
	first.RouteValues["id"] = 99

	second := result.ToResponse(out)
	require.Equal(t, map[string]any{"id": 7}, second.RouteValues)
}
