package generator

import (
	"fmt"
	"strings"
	"time"
)

// timestampFormat is interpolated into every timestamped template
const timestampFormat = "2006-01-02 15:04:05"

// Fallback produces deterministic templated text when remote generation is
// unavailable. Output depends only on the input and the current time.
type Fallback struct {
	now func() time.Time
}

// NewFallback creates a fallback generator using the wall clock
func NewFallback() *Fallback {
	return &Fallback{now: time.Now}
}

// Content returns templated text for the given kind. For comments an optional
// context hint (a post title) selects a canned contextual response.
func (f *Fallback) Content(kind Kind, contextHint string) string {
	if kind == KindPost {
		return f.post()
	}
	if contextHint != "" {
		return f.contextual(contextHint)
	}
	return f.genericComment()
}

// post returns the fixed discussion-post template, static aside from the timestamp
func (f *Fallback) post() string {
	return fmt.Sprintf(`# Today's AI and Technology Update

Hey Reddit community!

Here's what's happening in the world of AI and technology:

1. The field of artificial intelligence continues to evolve rapidly
2. Machine learning applications are becoming more accessible
3. Data science remains a crucial skill in today's tech landscape

**Want to join the discussion?**
* What AI technologies are you most interested in?
* What challenges have you faced in learning about AI?
* What topics would you like to see covered in future posts?

---
*This is an automated post. Generated at: %s*`, f.now().Format(timestampFormat))
}

// genericComment returns the acknowledgment used when no context hint is available
func (f *Fallback) genericComment() string {
	return fmt.Sprintf(`Thank you for sharing this interesting perspective!

The intersection of technology and learning is fascinating, and discussions like these help us all grow and understand better.

Would love to hear more about your experiences and thoughts on this topic.

*Comment generated at: %s*`, f.now().Format(timestampFormat))
}

// contextualResponse pairs a keyword with its canned reply. The slice below is
// scanned in order and the first keyword found in the title wins, so the
// declaration order encodes priority.
type contextualResponse struct {
	keyword  string
	response string
}

var contextualResponses = []contextualResponse{
	{keyword: "learn", response: `Great learning resource! Education in technology is crucial for staying current in our rapidly evolving field.

Some additional resources that might be helpful:
- Kaggle for hands-on practice
- Documentation for fundamental concepts
- Community forums for peer learning

Keep up the great work! What learning resources have you found most helpful?`},

	{keyword: "help", response: `Thanks for reaching out to the community! While I'm an automated response, the community here is very supportive.

Some general tips:
- Break down the problem into smaller parts
- Check the official documentation
- Use print statements for debugging
- Search for similar issues in the community

Hope this helps point you in the right direction!`},

	{keyword: "project", response: `Exciting project! Building practical applications is one of the best ways to learn and grow in this field.

Some suggestions for project development:
- Start with a clear scope
- Document your progress
- Test thoroughly
- Share updates with the community

Looking forward to seeing how your project develops!`},
}

// contextual picks the most relevant canned response for a post title:
// lower-case the title, return the response of the first keyword that is a
// substring of it, or the default acknowledgment when nothing matches
func (f *Fallback) contextual(title string) string {
	lower := strings.ToLower(title)
	for _, r := range contextualResponses {
		if strings.Contains(lower, r.keyword) {
			return r.response
		}
	}

	return fmt.Sprintf(`Thanks for sharing this interesting topic!

These kinds of discussions are valuable for the community and help us all learn from each other's experiences.

Looking forward to seeing more perspectives in this thread.

*Generated at: %s*`, f.now().Format(timestampFormat))
}
