package handler

import (
	"net/http"

	"github.com/alanjohnck/porter-proxy/internal/model"
	"github.com/alanjohnck/porter-proxy/internal/querystring"
	"github.com/alanjohnck/porter-proxy/internal/validation"
)

const msgInvalidParams = "Invalid JSON format in parameters"

var (
	pickupStep   = validation.MustStep("pickup_details must include lat and lng", validation.TruthyRequired("lat", "lng"))
	dropStep     = validation.MustStep("drop_details must include lat and lng", validation.TruthyRequired("lat", "lng"))
	customerStep = validation.MustStep("customer must include name and mobile", validation.TruthyRequired("name", "mobile"))
	mobileStep   = validation.MustStep("customer.mobile must include country_code and number", validation.TruthyRequired("country_code", "number"))
)

var quoteParams = []string{"pickup_details", "drop_details", "customer"}

// decodeQuote reads pickup_details, drop_details and customer from the
// query string, accepting JSON strings or bracket notation, and checks
// them in order. The first failure wins.
func decodeQuote(_ http.ResponseWriter, r *http.Request) (*outbound, *validation.Error) {
	params := querystring.Decode(r.URL.Query())

	for _, name := range quoteParams {
		if !validation.Truthy(params[name]) {
			return nil, validation.Errorf("pickup_details, drop_details and customer are required")
		}
	}

	parsed := make(map[string]any, len(quoteParams))
	for _, name := range quoteParams {
		v, err := validation.ParseParam(params[name])
		if err != nil {
			return nil, &validation.Error{Message: msgInvalidParams, Details: err.Error()}
		}
		parsed[name] = v
	}

	if verr := pickupStep.Check(parsed["pickup_details"]); verr != nil {
		return nil, verr
	}
	if verr := dropStep.Check(parsed["drop_details"]); verr != nil {
		return nil, verr
	}
	if verr := customerStep.Check(parsed["customer"]); verr != nil {
		return nil, verr
	}
	customer := parsed["customer"].(map[string]any)
	if verr := mobileStep.Check(customer["mobile"]); verr != nil {
		return nil, verr
	}

	req := model.QuoteRequest{
		PickupDetails: parsed["pickup_details"].(map[string]any),
		DropDetails:   parsed["drop_details"].(map[string]any),
		Customer:      customer,
	}
	return &outbound{rawQuery: querystring.Encode(req.Params())}, nil
}
