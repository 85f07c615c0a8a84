package iogender

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gnames/gnfmt"
	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/gender"
	"golang.org/x/time/rate"
)

type detectResponse struct {
	Name        string  `json:"name"`
	Gender      *string `json:"gender"`
	Probability float64 `json:"probability"`
	Count       int     `json:"count"`
	Error       string  `json:"error"`
}

type detector struct {
	remote
	certainty float64
	enc       gnfmt.GNjson
}

// NewDetector creates a client of a genderize-compatible service.
// Calls wait for lim, a nil lim gives the client its own limiter.
func NewDetector(lk config.LookupConfig, lim *rate.Limiter) gender.Detector {
	res := detector{
		remote:    newRemote(lk.DetectURL, lk, lim),
		certainty: lk.Certainty,
	}
	return &res
}

// Detect asks the service about a name. Answers with a probability
// below certainty become mostly_male or mostly_female, a name unknown to
// the service is unknown.
func (d *detector) Detect(ctx context.Context, name string) (gender.Detection, error) {
	u, err := url.Parse(d.url)
	if err != nil {
		return gender.DetectUnknown, DetectError(name, err)
	}
	q := u.Query()
	q.Set("name", name)
	if d.apiKey != "" {
		q.Set("apikey", d.apiKey)
	}
	u.RawQuery = q.Encode()

	body, err := d.do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodGet, u.String(), nil,
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return gender.DetectUnknown, DetectError(name, err)
	}

	var resp detectResponse
	if err = d.enc.Decode(body, &resp); err != nil {
		return gender.DetectUnknown, DetectError(name, err)
	}
	if resp.Error != "" {
		return gender.DetectUnknown, DetectError(name, ServiceError(resp.Error))
	}

	return d.detection(resp), nil
}

func (d *detector) detection(resp detectResponse) gender.Detection {
	if resp.Gender == nil {
		return gender.DetectUnknown
	}
	certain := resp.Probability >= d.certainty
	switch *resp.Gender {
	case "male":
		if certain {
			return gender.DetectMale
		}
		return gender.DetectMostlyMale
	case "female":
		if certain {
			return gender.DetectFemale
		}
		return gender.DetectMostlyFemale
	default:
		return gender.DetectUnknown
	}
}
