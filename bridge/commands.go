package bridge

import "strconv"

// command adapts a typed capability to the string-only calling convention at
// the document boundary; all arguments and results cross as strings.
type command func(args []string) string

// commandTable is the closed set of capabilities reachable by name from the
// document. Anything not listed here does not exist as far as loaded web
// content is concerned.
func (b *Bridge) commandTable() map[string]command {
	return map[string]command{
		"saveAuthToken": func(args []string) string {
			userID, _ := strconv.Atoi(arg(args, 1))
			b.SaveAuthToken(arg(args, 0), userID, arg(args, 2))
			return ""
		},
		"getAuthToken": func([]string) string { return b.GetAuthToken() },
		"getUsername":  func([]string) string { return b.GetUsername() },
		"getUserId":    func([]string) string { return strconv.Itoa(b.GetUserID()) },
		"isLoggedIn":   func([]string) string { return strconv.FormatBool(b.IsLoggedIn()) },
		"clearAuthToken": func([]string) string {
			b.ClearAuthToken()
			return ""
		},
		"showToast": func(args []string) string {
			b.ShowToast(arg(args, 0), arg(args, 1))
			return ""
		},
		"showNotification": func(args []string) string {
			b.ShowNotification(arg(args, 0), arg(args, 1))
			return ""
		},
		"sendDataToNative": func(args []string) string {
			return strconv.FormatBool(b.SendDataToNative(arg(args, 0)))
		},
		"getDataFromNative": func(args []string) string {
			return b.GetDataFromNative(arg(args, 0))
		},
		"navigateTo": func(args []string) string {
			b.NavigateTo(arg(args, 0), arg(args, 1))
			return ""
		},
		"goBack": func([]string) string {
			b.GoBack()
			return ""
		},
		"goForward": func([]string) string {
			b.GoForward()
			return ""
		},
		"getDeviceInfo": func([]string) string { return b.GetDeviceInfo() },
		"getApiBaseUrl": func([]string) string { return b.GetAPIBaseURL() },
		"logMessage": func(args []string) string {
			b.LogMessage(arg(args, 0), arg(args, 1))
			return ""
		},
	}
}

// Dispatch invokes a capability by name. Unknown names and internal faults
// yield an empty result; an error crossing into untrusted document code is
// treated as worse than a silently empty answer.
func (b *Bridge) Dispatch(name string, args ...string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Interface("panic", r).Str("command", name).Msg("bridge fault suppressed")
			result = ""
		}
	}()

	cmd, ok := b.commands[name]
	if !ok {
		b.log.Debug().Str("command", name).Msg("unknown bridge command")
		return ""
	}
	return cmd(args)
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
