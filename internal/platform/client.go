package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Client talks to the learning-platform API. Both endpoints are public; a
// failed call is reported once, never retried.
type Client struct {
	http *resty.Client
	log  *logrus.Entry
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{
		http: c,
		log:  logrus.WithField("component", "platform"),
	}
}

// LocaleQuestions fetches GET /quiz/{testID}/getlocalequestions and returns
// the question groups in server order.
func (c *Client) LocaleQuestions(ctx context.Context, testID string) ([]QuestionGroup, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(fmt.Sprintf("/quiz/%s/getlocalequestions", testID))
	if err != nil {
		return nil, fmt.Errorf("fetch locale questions: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("fetch locale questions: status %s", resp.Status())
	}
	groups, err := DecodeQuestionGroups(body)
	if err != nil {
		return nil, err
	}
	c.log.WithFields(logrus.Fields{"test_id": testID, "groups": len(groups)}).
		Debug("fetched locale questions")
	return groups, nil
}

// QuizInfo fetches GET /api/getquizfromid?nid={testID}. The endpoint returns
// a JSON array; only the first element is meaningful.
func (c *Client) QuizInfo(ctx context.Context, testID string) (QuizInfo, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("nid", testID).
		Get("/api/getquizfromid")
	if err != nil {
		return QuizInfo{}, fmt.Errorf("fetch quiz info: %w", err)
	}
	if resp.StatusCode() >= 400 {
		return QuizInfo{}, fmt.Errorf("fetch quiz info: status %s", resp.Status())
	}

	var arr []QuizInfo
	if err := json.Unmarshal(resp.Body(), &arr); err != nil {
		return QuizInfo{}, fmt.Errorf("fetch quiz info: %w", err)
	}
	if len(arr) == 0 {
		return QuizInfo{}, errors.New("fetch quiz info: empty response")
	}
	return arr[0], nil
}
