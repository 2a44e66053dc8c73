// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package advisory

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"

	"github.com/tomtom215/tripweaver/internal/models"
)

// Chat topics.
const (
	TopicFood      = "food"
	TopicWeather   = "weather"
	TopicTransport = "transport"
	TopicCost      = "cost"
	TopicTime      = "time"
	TopicLocal     = "local"
	TopicTips      = "tips"
	TopicGeneral   = "general"
)

// Suggestions are offered with every chat reply.
var Suggestions = []string{
	"What's the best local dish?",
	"How do I get around?",
	"Any budget-friendly tips?",
	"What should I not miss?",
}

const generalReply = "That's an interesting question! I'm here to help with recommendations, " +
	"transportation, local tips, or any travel planning questions. What would you like to know more about?"

type chatTopic struct {
	name    string
	reply   string
	matcher a.AhoCorasick
}

func newMatcher(keywords ...string) a.AhoCorasick {
	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
	})
	return builder.Build(keywords)
}

// chatTopics is checked in order; keywords match anywhere in the message,
// so "seafood" is about food.
var chatTopics = []chatTopic{
	{
		name:    TopicFood,
		matcher: newMatcher("food", "eat", "restaurant"),
		reply: "Great question! I recommend trying the local specialties. Each destination has unique " +
			"culinary treasures. Would you like me to suggest restaurants based on your mood?",
	},
	{
		name:    TopicWeather,
		matcher: newMatcher("weather"),
		reply: "The weather looks good for your trip! I've factored it into your recommendations. " +
			"Don't forget to check the forecast closer to your departure time.",
	},
	{
		name:    TopicTransport,
		matcher: newMatcher("transport", "get there"),
		reply: "I've analyzed multiple transportation options for you. The fastest isn't always the best - " +
			"consider comfort, cost, and environmental impact too!",
	},
	{
		name:    TopicCost,
		matcher: newMatcher("cost", "price", "budget"),
		reply: "Budget-conscious? I can help! Mix expensive highlights with affordable local experiences. " +
			"Street food and free walking tours are often the most memorable.",
	},
	{
		name:    TopicTime,
		matcher: newMatcher("time", "long"),
		reply: "Time management is key! I've optimized your itinerary based on your duration. Remember to " +
			"leave buffer time for spontaneous discoveries - they're often the best part!",
	},
	{
		name:    TopicLocal,
		matcher: newMatcher("local", "authentic"),
		reply: "Seeking authentic experiences? Venture beyond tourist hotspots! Talk to locals, visit " +
			"neighborhood markets, and try regional dishes you can't find elsewhere.",
	},
	{
		name:    TopicTips,
		matcher: newMatcher("tips", "advice"),
		reply: "Pro tip: Download offline maps, learn a few local phrases, and always carry a portable " +
			"charger. The best adventures happen when you're prepared!",
	},
}

// Topic returns the first topic with a keyword in message, or TopicGeneral.
func Topic(message string) string {
	message = strings.ToLower(message)
	for _, t := range chatTopics {
		if t.matcher.Iter(message).Next() != nil {
			return t.name
		}
	}
	return TopicGeneral
}

// Chat answers a travel question with the canned reply of its topic.
func (s *Service) Chat(message string) models.ChatResponse {
	topic := Topic(message)
	reply := generalReply
	for _, t := range chatTopics {
		if t.name == topic {
			reply = t.reply
			break
		}
	}

	s.logger.Debug().
		Str("topic", topic).
		Int("message_len", len(message)).
		Msg("chat answered")

	return models.ChatResponse{
		Response:    reply,
		Topic:       topic,
		Suggestions: append([]string(nil), Suggestions...),
	}
}
