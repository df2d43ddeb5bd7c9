package permission

import "lello/internal/model"

var BoardConfig = Config{
	Name: "BoardPermission",
	Base: map[Action]Rule{
		ActionCreate: RequiresAuthentication,
		ActionList:   RequiresAuthentication,
	},
	Instance: map[Action]Rule{
		ActionRetrieve:       RequiresAuthentication,
		ActionUpdate:         RequiresCapability(model.CapabilityChangeBoard),
		ActionPartialUpdate:  RequiresCapability(model.CapabilityChangeBoard),
		ActionDestroy:        RequiresCapability(model.CapabilityDeleteBoard),
		ActionLists:          RequiresAuthentication,
		ActionAudits:         RequiresAuthentication,
		ActionCalendarEvents: RequiresAuthentication,
		ActionGrants:         RequiresCapability(model.CapabilityShareBoard),
	},
}

var ListConfig = Config{
	Name: "ListPermission",
	Base: map[Action]Rule{
		ActionCreate: RequiresAuthentication,
		ActionList:   RequiresAuthentication,
	},
	Instance: map[Action]Rule{
		ActionRetrieve:      RequiresAuthentication,
		ActionUpdate:        RequiresAuthentication,
		ActionPartialUpdate: RequiresAuthentication,
		ActionDestroy:       RequiresAuthentication,
		ActionCards:         RequiresAuthentication,
	},
}

var CardConfig = Config{
	Name: "CardPermission",
	Base: map[Action]Rule{
		ActionCreate: RequiresAuthentication,
		ActionList:   RequiresAuthentication,
	},
	Instance: map[Action]Rule{
		ActionRetrieve:      RequiresAuthentication,
		ActionUpdate:        RequiresAuthentication,
		ActionPartialUpdate: RequiresAuthentication,
		ActionDestroy:       RequiresAuthentication,
		ActionChecklist:     RequiresAuthentication,
	},
}

var LabelConfig = Config{
	Name: "LabelPermission",
	Base: map[Action]Rule{
		ActionCreate: RequiresAuthentication,
		ActionList:   RequiresAuthentication,
	},
	Instance: map[Action]Rule{
		ActionRetrieve:      RequiresAuthentication,
		ActionUpdate:        RequiresAuthentication,
		ActionPartialUpdate: RequiresAuthentication,
		ActionDestroy:       RequiresAuthentication,
	},
}

var TeamConfig = Config{
	Name: "TeamPermission",
	Base: map[Action]Rule{
		ActionCreate: RequiresAuthentication,
	},
	Instance: map[Action]Rule{
		ActionRetrieve: RequiresAuthentication,
		ActionMembers:  RequiresCapability(model.CapabilityManageTeam),
	},
}
