package http

import (
	"tailortalk/internal/appointment"
	"tailortalk/pkg/response"
)

// chatReq is the POST /chat body. Text is a pointer so a missing field can be
// told apart from an empty message; unknown fields are rejected by the decoder.
type chatReq struct {
	Text *string `json:"text"`
}

// chatResp is the chat endpoint's raw wire reply, separate from the
// pkg/response envelope used by the other routes.
type chatResp struct {
	Response string `json:"response"`
}

// errorResp is the body for 4xx/5xx on the chat endpoint.
type errorResp struct {
	Detail string `json:"detail"`
}

// eventItem is one event in the appointments listing.
type eventItem struct {
	Summary   string            `json:"summary"`
	StartTime response.DateTime `json:"start_time"`
	EndTime   response.DateTime `json:"end_time"`
	Link      string            `json:"link,omitempty"`
}

// listResp is the GET /appointments payload.
type listResp struct {
	Events []eventItem `json:"events"`
	Count  int         `json:"count"`
}

func newListResp(output appointment.ListEventsOutput) listResp {
	events := make([]eventItem, 0, len(output.Events))
	for _, ev := range output.Events {
		events = append(events, eventItem{
			Summary:   ev.Summary,
			StartTime: response.DateTime(ev.StartTime),
			EndTime:   response.DateTime(ev.EndTime),
			Link:      ev.Link,
		})
	}
	return listResp{Events: events, Count: output.Count}
}
