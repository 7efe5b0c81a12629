package federation

const (
	ActivityStreamsContext = "https://www.w3.org/ns/activitystreams"
	SecurityContext        = "https://w3id.org/security/v1"

	ContentType     = "application/activity+json"
	LDContentType   = `application/ld+json; profile="https://www.w3.org/ns/activitystreams"`
	JRDContentType  = "application/jrd+json"
	ProfilePageRel  = "http://webfinger.net/rel/profile-page"
	MainKeyFragment = "#main-key"
)

// DefaultContext is the @context attached to documents served by this server.
var DefaultContext = []any{ActivityStreamsContext, SecurityContext}
