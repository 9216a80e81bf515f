package models

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleOrg, MembershipRoleLeader, MembershipRoleRep:
		return true
	}
	return false
}

// IsValid checks if the MembershipStatus is valid
func (s MembershipStatus) IsValid() bool {
	switch s {
	case MembershipStatusActive, MembershipStatusDisabled:
		return true
	}
	return false
}

// IsValid checks if the ContactStage is valid
func (s ContactStage) IsValid() bool {
	for _, stage := range ContactStages {
		if s == stage {
			return true
		}
	}
	return false
}

// IsValid checks if the OnPublishStrategy is valid
func (s OnPublishStrategy) IsValid() bool {
	switch s {
	case OnPublishTerminate, OnPublishMigrate:
		return true
	}
	return false
}

// IsValid checks if the StepType is valid
func (t StepType) IsValid() bool {
	switch t {
	case StepTypeCall, StepTypeEmail, StepTypeMessage, StepTypeTask:
		return true
	}
	return false
}

// IsValid checks if the AssigneeMode is valid
func (m AssigneeMode) IsValid() bool {
	switch m {
	case AssigneeModeOwner, AssigneeModeLeader, AssigneeModeSpecific:
		return true
	}
	return false
}

// IsValid checks if the TargetType is valid
func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeContact, TargetTypeMembership:
		return true
	}
	return false
}

// IsValid checks if the NotificationTab is valid
func (t NotificationTab) IsValid() bool {
	for _, tab := range NotificationTabs {
		if t == tab {
			return true
		}
	}
	return false
}

// IsValidBoard checks if a notification board value is known
func IsValidBoard(board string) bool {
	switch board {
	case BoardContacts, BoardSequences, BoardTeam:
		return true
	}
	return false
}
