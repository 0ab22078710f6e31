package replicate

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/replicate/replicate-go"
)

var (
	ErrEmptyOutput = errors.New("replicate returned no output")
	ErrNoToken     = errors.New("REPLICATE_API_TOKEN is not set")
)

// PredictionError is a prediction that finished as failed or canceled.
// Its message is the model's own error text.
type PredictionError struct {
	ID     string
	Status replicate.Status
	Detail string
}

func (e *PredictionError) Error() string {
	return e.Detail
}

func newPredictionError(prediction *replicate.Prediction) *PredictionError {
	detail := fmt.Sprintf("prediction %s", prediction.Status)
	if prediction.Error != nil {
		detail = fmt.Sprintf("%v", prediction.Error)
	}
	return &PredictionError{ID: prediction.ID, Status: prediction.Status, Detail: detail}
}

// OutputURL normalizes a prediction output to a single URL.
// Models return either one value or an ordered list; the first entry wins.
func OutputURL(output any) (string, error) {
	switch v := output.(type) {
	case nil:
		return "", ErrEmptyOutput
	case string:
		return v, nil
	case []string:
		if len(v) == 0 {
			return "", ErrEmptyOutput
		}
		return v[0], nil
	case []any:
		if len(v) == 0 {
			return "", ErrEmptyOutput
		}
		return OutputURL(v[0])
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprint(v), nil
	}
}
