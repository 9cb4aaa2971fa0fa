package report

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/entities"
)

const (
	stage           = "report"
	contentTypeJson = "application/json"
)

type queryResult struct {
	queryID string
	result  any
}

// Publisher sink of published results, implemented by communication.RabbitMQ
type Publisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// Publish sends one QueryResponse per statistic group to queueName
func Publish(ctx context.Context, publisher Publisher, queueName string, r *Report) error {
	responses, err := Responses(r)
	if err != nil {
		return err
	}

	for _, response := range responses {
		responseBytes, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("error marshalling query %s response: %w", response.GetQueryID(), err)
		}

		err = publisher.PublishMessageInQueue(ctx, queueName, responseBytes, contentTypeJson)
		if err != nil {
			return fmt.Errorf("error publishing query %s response in %s: %w", response.GetQueryID(), queueName, err)
		}
		log.Debugf("[report][city: %s][query: %s][status: OK] response published in %s", r.City, response.GetQueryID(), queueName)
	}

	return nil
}

// Responses wraps every statistic group of the report in a QueryResponse
func Responses(r *Report) ([]*queryresponse.QueryResponse, error) {
	results := []queryResult{
		{TimeQuery, r.Time},
		{StationQuery, r.Station},
		{DurationQuery, r.Duration},
		{UserQuery, r.User},
	}
	if r.Distance != nil {
		results = append(results, queryResult{DistanceQuery, r.Distance})
	}

	responses := make([]*queryresponse.QueryResponse, 0, len(results))
	for _, result := range results {
		metadata := entities.NewMetadata(r.City, result.queryID+"-stats", stage).
			WithFilter(r.Criteria.Month, r.Criteria.Weekday, r.Records)

		response, err := queryresponse.NewQueryResponse(result.queryID, metadata, result.result)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	return responses, nil
}
