// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package advisory

import (
	"strings"
	"testing"

	"github.com/tomtom215/tripweaver/internal/noise"
)

func TestTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    string
	}{
		{"Where should I eat tonight?", TopicFood},
		{"I am a FOODIE", TopicFood},
		{"Any good seafood places?", TopicFood},
		{"Best restaurant near the tower?", TopicFood},
		{"Will the weather hold?", TopicFood}, // "weather" contains "eat"
		{"WEATHER?", TopicFood},
		{"How do I get there from the airport?", TopicTransport},
		{"Public transport options?", TopicTransport},
		{"What does it cost?", TopicCost},
		{"Is the price reasonable?", TopicCost},
		{"I'm on a budget", TopicCost},
		{"How long is the walk?", TopicTime},
		{"What time does it open?", TopicTime},
		{"Something authentic please", TopicLocal},
		{"Where do locals go?", TopicLocal},
		{"Any advice?", TopicTips},
		{"Share some tips", TopicTips},
		{"Hello!", TopicGeneral},
		{"", TopicGeneral},
		// First topic in order wins.
		{"Food and weather tips", TopicFood},
		{"budget tips for the trip", TopicCost},
	}

	for _, tt := range tests {
		if got := Topic(tt.message); got != tt.want {
			t.Errorf("Topic(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

func TestChat(t *testing.T) {
	t.Parallel()

	s := newTestService(t, noise.NewSequence())

	food := s.Chat("Tell me about the FOOD scene")
	if food.Topic != TopicFood {
		t.Errorf("Topic = %q, want food", food.Topic)
	}
	if !strings.HasPrefix(food.Response, "Great question! I recommend trying the local specialties.") {
		t.Errorf("Response = %q", food.Response)
	}

	general := s.Chat("hi there")
	if general.Topic != TopicGeneral || general.Response != generalReply {
		t.Errorf("general reply = %+v", general)
	}

	for _, resp := range []string{food.Response, general.Response} {
		if resp == "" {
			t.Error("empty response")
		}
	}
	if len(food.Suggestions) != 4 || food.Suggestions[0] != "What's the best local dish?" {
		t.Errorf("Suggestions = %v", food.Suggestions)
	}

	food.Suggestions[0] = "mutated"
	if Suggestions[0] == "mutated" {
		t.Error("Chat should return a copy of the suggestions")
	}
}

func TestChat_EveryTopicHasReply(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, topic := range chatTopics {
		if topic.reply == "" {
			t.Errorf("topic %q has no reply", topic.name)
		}
		if seen[topic.reply] {
			t.Errorf("topic %q reuses a reply", topic.name)
		}
		seen[topic.reply] = true
	}
}
