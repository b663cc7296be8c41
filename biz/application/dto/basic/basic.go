package basic

type UserMeta struct {
	UserId string `json:"userId" mapstructure:"sub"`
}

func (u *UserMeta) GetUserId() string {
	if u == nil {
		return ""
	}
	return u.UserId
}
