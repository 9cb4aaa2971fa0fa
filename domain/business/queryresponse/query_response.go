package queryresponse

import (
	"encoding/json"
	"fmt"

	"bikeshare/domain/entities"
)

// QueryResponse contains the result of one statistic group, ready to leave the process
// + Metadata: city, filter and producer of the result
// + QueryID: statistic group, e.g. time, station
// + Result: structured result, JSON encoded
type QueryResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	QueryID  string            `json:"query_id"`
	Result   json.RawMessage   `json:"result"`
}

func NewQueryResponse(queryID string, metadata entities.Metadata, result any) (*QueryResponse, error) {
	resultBytes, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("error marshalling result of query %s: %w", queryID, err)
	}

	return &QueryResponse{
		Metadata: metadata,
		QueryID:  queryID,
		Result:   resultBytes,
	}, nil
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

// Decode unmarshals the result into target
func (qr *QueryResponse) Decode(target any) error {
	return json.Unmarshal(qr.Result, target)
}
