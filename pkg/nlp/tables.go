package nlp

import (
	"fmt"
	"time"
)

const (
	timeLayout = "3:04:05 PM"
	dateLayout = "Monday, January 2, 2006"
)

func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// defaultIntents is the built-in intent table. Order matters: the first
// intent with a matching trigger wins. Triggers must already be normalized
// (lowercase, no punctuation).
func defaultIntents() []Intent {
	return []Intent{
		{
			Name: "assistant_name",
			Triggers: []string{
				"what is your name",
				"who are you",
				"tell me your name",
				"your name",
				"identify yourself",
				"who made you",
				"who created you",
			},
			Responses: []ResponseTemplate{
				Static("I am JARVIS, Sir. Your personal voice assistant created by Mister Ghosh."),
				Static("My name is JARVIS, Sir. I was designed and developed by Mister Ghosh to assist you."),
				Static("You may call me JARVIS, Sir. I am here to help you with whatever you need."),
				Static("I am JARVIS, an intelligent assistant built by Mister Ghosh to serve you efficiently."),
			},
		},
		{
			Name: "greeting",
			Triggers: []string{
				"hello jarvis",
				"hi jarvis",
				"hey jarvis",
				"good morning jarvis",
				"good evening jarvis",
				"good afternoon jarvis",
				"hello",
				"hi there",
				"hey there",
			},
			Responses: []ResponseTemplate{
				Static("Hello Sir. How may I assist you today?"),
				Static("Greetings Sir. I am ready for your command."),
				Static("Hello Sir. I'm online and at your service."),
				Static("Good to hear from you, Sir. What can I do for you?"),
				Static("Hello Sir. Always a pleasure to be of assistance."),
			},
		},
		{
			Name: "assistant_capabilities",
			Triggers: []string{
				"what can you do",
				"your capabilities",
				"help me",
				"what are your features",
				"how can you help",
			},
			Responses: []ResponseTemplate{
				Static("I can tell you the time and date, open websites, search for information, and answer questions about famous people, Sir."),
				Static("I'm capable of providing time and date information, opening popular websites, conducting web searches, and retrieving information about notable personalities."),
				Static("My capabilities include time and date queries, website navigation, web searches, and informational lookups, Sir."),
			},
		},
		{
			Name: "thank_you",
			Triggers: []string{
				"thank you",
				"thanks",
				"appreciate it",
				"good job",
				"well done",
				"awesome",
			},
			Responses: []ResponseTemplate{
				Static("You're very welcome, Sir. Always happy to assist."),
				Static("My pleasure, Sir. I'm here whenever you need me."),
				Static("At your service, Sir. Glad I could help."),
				Static("Anytime, Sir. That's what I'm here for."),
			},
		},
		{
			Name: "how_are_you",
			Triggers: []string{
				"how are you",
				"how are you doing",
				"are you okay",
				"whats up",
			},
			Responses: []ResponseTemplate{
				Static("I'm functioning at optimal capacity, Sir. Ready to assist you."),
				Static("All systems operational, Sir. How may I help you today?"),
				Static("I'm doing excellently, Sir. Thank you for asking. How about you?"),
				Static("Running smoothly, Sir. What can I do for you?"),
			},
		},
		{
			Name: "time",
			Triggers: []string{
				"what time is it",
				"what is the time",
				"current time",
				"tell me the time",
				"time please",
				"whats the time",
			},
			Responses: []ResponseTemplate{
				func(now time.Time) string {
					return fmt.Sprintf("The current time is %s, Sir.", FormatTime(now))
				},
				func(now time.Time) string {
					return fmt.Sprintf("It is %s right now, Sir.", FormatTime(now))
				},
				func(now time.Time) string {
					return fmt.Sprintf("According to my systems, it's %s.", FormatTime(now))
				},
			},
		},
		{
			Name: "date",
			Triggers: []string{
				"what is todays date",
				"what is the date",
				"current date",
				"tell me the date",
				"date please",
				"what day is today",
				"whats the date",
			},
			Responses: []ResponseTemplate{
				func(now time.Time) string {
					return fmt.Sprintf("Today is %s, Sir.", FormatDate(now))
				},
				func(now time.Time) string {
					return fmt.Sprintf("The date is %s, Sir.", FormatDate(now))
				},
				func(now time.Time) string {
					return fmt.Sprintf("According to the calendar, it's %s.", FormatDate(now))
				},
			},
		},
		{
			Name: "datetime",
			Triggers: []string{
				"what is the date and time",
				"current date and time",
				"tell me date and time",
				"whats the date and time",
				"whats the date and time now",
				"dateandtime please",
				"what is the date and time bro",
			},
			Responses: []ResponseTemplate{
				func(now time.Time) string {
					return fmt.Sprintf("Sir, today is %s and the time is %s.", FormatDate(now), FormatTime(now))
				},
				func(now time.Time) string {
					return fmt.Sprintf("It is currently %s at %s.", FormatDate(now), FormatTime(now))
				},
			},
		},
		{
			Name: "day",
			Triggers: []string{
				"what day is it",
				"which day is today",
				"day of the week",
			},
			Responses: []ResponseTemplate{
				func(now time.Time) string {
					return fmt.Sprintf("Today is %s, Sir.", now.Weekday())
				},
				func(now time.Time) string {
					return fmt.Sprintf("It's %s today, Sir.", now.Weekday())
				},
			},
		},
		{
			Name: "goodbye",
			Triggers: []string{
				"goodbye jarvis",
				"bye jarvis",
				"see you later",
				"talk to you later",
			},
			Responses: []ResponseTemplate{
				Static("Goodbye, Sir. I'll be here when you need me."),
				Static("Until next time, Sir. Stay well."),
				Static("Farewell, Sir. Don't hesitate to call on me again."),
				Static("See you later, Sir. Take care."),
			},
		},
	}
}

// defaultSites maps spoken aliases to absolute URLs. Aliases are stored in
// normalized form; multi-word variants cover common recognizer splits.
func defaultSites() []SiteEntry {
	return []SiteEntry{
		{Alias: "youtube", URL: "https://www.youtube.com"},
		{Alias: "you tube", URL: "https://www.youtube.com"},
		{Alias: "google", URL: "https://www.google.com"},
		{Alias: "facebook", URL: "https://www.facebook.com"},
		{Alias: "twitter", URL: "https://www.twitter.com"},
		{Alias: "instagram", URL: "https://www.instagram.com"},
		{Alias: "linkedin", URL: "https://www.linkedin.com"},
		{Alias: "github", URL: "https://www.github.com"},
		{Alias: "stackoverflow", URL: "https://stackoverflow.com"},
		{Alias: "stack overflow", URL: "https://stackoverflow.com"},
		{Alias: "reddit", URL: "https://www.reddit.com"},
		{Alias: "amazon", URL: "https://www.amazon.com"},
		{Alias: "flipkart", URL: "https://www.flipkart.com"},
		{Alias: "netflix", URL: "https://www.netflix.com"},
		{Alias: "spotify", URL: "https://www.spotify.com"},
		{Alias: "chatgpt", URL: "https://chat.openai.com"},
		{Alias: "chat gpt", URL: "https://chat.openai.com"},
		{Alias: "gemini", URL: "https://gemini.google.com"},
		{Alias: "claude", URL: "https://claude.ai"},
		{Alias: "wikipedia", URL: "https://www.wikipedia.org"},
		{Alias: "gmail", URL: "https://mail.google.com"},
		{Alias: "whatsapp", URL: "https://web.whatsapp.com"},
		{Alias: "whatsapp web", URL: "https://web.whatsapp.com"},
		{Alias: "telegram", URL: "https://web.telegram.org"},
		{Alias: "discord", URL: "https://discord.com"},
		{Alias: "twitch", URL: "https://www.twitch.tv"},
		{Alias: "pinterest", URL: "https://www.pinterest.com"},
		{Alias: "quora", URL: "https://www.quora.com"},
		{Alias: "medium", URL: "https://www.medium.com"},
		{Alias: "dev", URL: "https://dev.to"},
		{Alias: "dev to", URL: "https://dev.to"},
		{Alias: "leetcode", URL: "https://leetcode.com"},
		{Alias: "leet code", URL: "https://leetcode.com"},
		{Alias: "hackerrank", URL: "https://www.hackerrank.com"},
		{Alias: "codechef", URL: "https://www.codechef.com"},
		{Alias: "codeforces", URL: "https://codeforces.com"},
		{Alias: "geeksforgeeks", URL: "https://www.geeksforgeeks.org"},
		{Alias: "geeks for geeks", URL: "https://www.geeksforgeeks.org"},
	}
}

// defaultEntities lists the people the assistant can look up, in match
// priority order.
func defaultEntities() []string {
	return []string{
		"steve jobs", "mark zuckerberg", "cristiano ronaldo", "lionel messi",
		"jeff bezos", "bill gates", "elon musk", "warren buffett", "barack obama",
		"sundar pichai", "mukesh ambani", "virat kohli", "sachin tendulkar",
		"narendra modi", "amitabh bachchan", "shah rukh khan", "salman khan",
		"albert einstein", "isaac newton", "marie curie", "nikola tesla",
		"ada lovelace", "charles darwin", "stephen hawking", "mahatma gandhi",
		"nelson mandela", "martin luther king", "michael jackson", "taylor swift",
	}
}
