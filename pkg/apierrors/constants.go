package apierrors

const (
	MsgInvalidID           = "invalidID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidSearchFilter = "invalidSearchFilter"
	MsgTaskNotFound        = "taskNotFound"
	MsgFailListTasks       = "failListTasks"
	MsgFailSearchTasks     = "failSearchTasks"
	MsgFailGetTask         = "failGetTask"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"

	MsgInvalidSignupPayload = "invalidSignupPayload"
	MsgInvalidLoginPayload  = "invalidLoginPayload"
	MsgEmailTaken           = "emailTaken"
	MsgInvalidCredentials   = "invalidCredentials"
	MsgAccountPending       = "accountPending"
	MsgAccountRejected      = "accountRejected"
	MsgUnauthenticated      = "unauthenticated"
	MsgForbidden            = "forbidden"
	MsgFailSignup           = "failSignup"
	MsgFailLogin            = "failLogin"
	MsgFailLogout           = "failLogout"
	MsgFailAuthenticate     = "failAuthenticate"

	MsgInvalidUserStatus = "invalidUserStatus"
	MsgUserNotFound      = "userNotFound"
	MsgFailListUsers     = "failListUsers"
	MsgFailUpdateUser    = "failUpdateUser"
	MsgSelfReject        = "selfReject"
)
