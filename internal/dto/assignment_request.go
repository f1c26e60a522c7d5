package dto

type SelectTeamRequest struct {
	OrderID string `json:"orderId" validate:"required,max=32"`
	TeamID  string `json:"teamId" validate:"required,max=64"`
}

type AssignMemberRequest struct {
	MemberID   string `json:"memberId" validate:"required,max=32"`
	MemberName string `json:"memberName,omitempty" validate:"omitempty,max=128"`
}
