package errors

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	MongoCodes   []int    `json:"mongo_codes,omitempty"`
	MongoLabels  []string `json:"mongo_labels,omitempty"`
	MongoTimeout bool     `json:"mongo_timeout,omitempty"`
	MongoNetwork bool     `json:"mongo_network,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	d.MongoTimeout = mongo.IsTimeout(err)
	d.MongoNetwork = mongo.IsNetworkError(err)

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		d.MongoCodes = append(d.MongoCodes, int(cmdErr.Code))
		d.MongoLabels = append(d.MongoLabels, cmdErr.Labels...)
		return d
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			d.MongoCodes = append(d.MongoCodes, we.Code)
		}
		if writeErr.WriteConcernError != nil {
			d.MongoCodes = append(d.MongoCodes, writeErr.WriteConcernError.Code)
		}
		d.MongoLabels = append(d.MongoLabels, writeErr.Labels...)
		return d
	}

	return d
}
