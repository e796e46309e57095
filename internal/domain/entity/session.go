package entity

// Session identifies the person behind a request. It comes from the client's
// local profile and carries no authentication guarantee.
type Session struct {
	UserName      string `json:"userName"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

func (s Session) IsAnonymous() bool {
	return s.UserName == ""
}
