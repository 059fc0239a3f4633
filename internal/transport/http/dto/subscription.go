package dto

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type SubscriberListQuery struct {
	// Active is "true", "false" or empty for both.
	Active string `query:"active" validate:"omitempty,oneof=true false"`
	PageQuery
}

func (q SubscriberListQuery) ActiveFilter() *bool {
	if q.Active == "" {
		return nil
	}
	active := q.Active == "true"
	return &active
}
