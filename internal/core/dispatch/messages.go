package dispatch

import (
	"fmt"

	"careerassist/internal/core/intent"
	perr "careerassist/internal/platform/errors"
)

const (
	greeting      = "I'm here to help! How can I assist you today?"
	resumeApology = "I encountered an error while generating your resume. Please try again."
)

// apology explains a failed search by category without exposing provider payloads
func apology(service string, err error) string {
	switch perr.Classify(err) {
	case perr.CategoryAPIKey:
		return fmt.Sprintf("The %s search isn't set up yet: its API key is missing. Please contact support.", service)
	case perr.CategoryAuth:
		return fmt.Sprintf("The %s search service rejected our credentials. Please try again later or contact support.", service)
	case perr.CategoryRateLimit:
		return fmt.Sprintf("The %s search service is rate limited right now. Please wait a few minutes and try again.", service)
	case perr.CategoryServer:
		return fmt.Sprintf("The %s search service is temporarily unavailable. Please try again shortly.", service)
	case perr.CategoryNetwork:
		return fmt.Sprintf("I couldn't reach the %s search service. Please check your connection and try again.", service)
	}
	return fmt.Sprintf("I encountered an error while searching for %s. Please try again with a different search term.", plural(service))
}

func plural(service string) string {
	if service == "community" {
		return "communities"
	}
	return service + "s"
}

func notFound(what, kw string) string {
	return fmt.Sprintf("I couldn't find any %s for %q. Please try different search terms.", what, kw)
}

func clarification(of intent.Kind) string {
	switch of {
	case intent.KindCourseSearch:
		return "I couldn't understand your course request. Please tell me which topic you'd like to learn."
	case intent.KindCommunitySearch:
		return "I couldn't understand your community request. Please tell me what kind of community you're looking for."
	}
	return "I couldn't understand your job search request. Please specify the job title you're looking for."
}
