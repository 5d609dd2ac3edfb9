package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/motmot/nexlink/backend/internal/store"
)

// The tool surface exposed to the automation caller. Each tool is a
// typed command; Dispatch maps a command onto store operations and
// returns a typed result. The privileged commands share the ordinary
// operation surface with no extra authorization layer; trusting the
// caller is a documented property of the system.

// Result is what every tool invocation returns. Unknown tool names
// yield a failure result, never a panic or error.
type Result struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Password string `json:"password,omitempty"`
}

// Command is a tool invocation with a typed payload.
type Command interface {
	CommandName() string
}

type CreateAccount struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DeleteAccount struct {
	// Identifier is an exact email or exact name.
	Identifier string `json:"identifier"`
}

type UpdateUserProfile struct {
	Identifier   string `json:"identifier"`
	NewName      string `json:"newName,omitempty"`
	NewAvatarURL string `json:"newAvatarUrl,omitempty"`
}

type ForceLogoutAll struct{}

type RecoverPassword struct {
	Email string `json:"email"`
}

type BanUser struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason,omitempty"`
}

type CreatePost struct {
	UserName string `json:"userName"`
	Content  string `json:"content"`
}

type BulkPostEntry struct {
	UserName string `json:"userName"`
	Content  string `json:"content"`
}

type BulkPost struct {
	Posts []BulkPostEntry `json:"posts"`
}

type CreateComment struct {
	PostID   string `json:"postId"`
	UserName string `json:"userName"`
	Content  string `json:"content"`
}

type AddFriend struct {
	UserA string `json:"userA"`
	UserB string `json:"userB"`
}

type FollowUser struct {
	FollowerName string `json:"followerName"`
	TargetName   string `json:"targetName"`
}

func (CreateAccount) CommandName() string     { return "create_account" }
func (DeleteAccount) CommandName() string     { return "delete_account" }
func (UpdateUserProfile) CommandName() string { return "update_user_profile" }
func (ForceLogoutAll) CommandName() string    { return "force_logout_all" }
func (RecoverPassword) CommandName() string   { return "recover_password" }
func (BanUser) CommandName() string           { return "ban_user" }
func (CreatePost) CommandName() string        { return "create_post" }
func (BulkPost) CommandName() string          { return "bulk_post" }
func (CreateComment) CommandName() string     { return "create_comment" }
func (AddFriend) CommandName() string         { return "add_friend" }
func (FollowUser) CommandName() string        { return "follow_user" }

// Dispatch executes a typed command against the store.
func Dispatch(st *store.Store, cmd Command) Result {
	switch c := cmd.(type) {
	case CreateAccount:
		password, err := st.AdminCreateUser(c.Name, c.Email)
		if err != nil {
			return Result{Success: false, Message: err.Error()}
		}
		return Result{Success: true, Message: "Account created. Pass: " + password, Password: password}

	case DeleteAccount:
		if st.AdminDeleteUser(c.Identifier) {
			return Result{Success: true, Message: "Deleted"}
		}
		return Result{Success: false, Message: "Not found"}

	case UpdateUserProfile:
		user := st.GetUserByName(c.Identifier)
		if user == nil {
			user = st.GetUserByEmail(c.Identifier)
		}
		if user == nil {
			return Result{Success: false, Message: "User not found"}
		}
		update := store.ProfileUpdate{}
		if c.NewName != "" {
			update.Name = &c.NewName
		}
		if c.NewAvatarURL != "" {
			update.Avatar = &c.NewAvatarURL
		}
		st.UpdateProfile(user.ID, update)
		return Result{Success: true, Message: "Updated profile for " + user.Name}

	case ForceLogoutAll:
		st.AdminForceLogoutAll()
		return Result{Success: true}

	case RecoverPassword:
		password, ok := st.AdminRevealPassword(c.Email)
		if !ok {
			return Result{Success: false, Message: "User not found"}
		}
		return Result{Success: true, Password: password}

	case BanUser:
		user := st.GetUserByID(c.Identifier)
		if user == nil {
			user = st.GetUserByName(c.Identifier)
		}
		if user == nil {
			return Result{Success: false, Message: "User not found"}
		}
		st.AdminBanUser(user.ID)
		return Result{Success: true, Message: "Banned " + user.Name}

	case CreatePost:
		user := st.GetUserByName(c.UserName)
		if user == nil {
			return Result{Success: false, Message: "User not found"}
		}
		st.AddPost(user.ID, c.Content, "", "", "")
		return Result{Success: true, Message: "Posted for " + user.Name}

	case BulkPost:
		count := 0
		for _, p := range c.Posts {
			if user := st.GetUserByName(p.UserName); user != nil {
				st.AddPost(user.ID, p.Content, "", "", "")
				count++
			}
		}
		return Result{Success: true, Message: fmt.Sprintf("Created %d posts.", count)}

	case CreateComment:
		user := st.GetUserByName(c.UserName)
		if user == nil {
			return Result{Success: false, Message: "User not found"}
		}
		st.AddComment(c.PostID, user.ID, c.Content)
		return Result{Success: true, Message: "Commented."}

	case AddFriend:
		a := st.GetUserByName(c.UserA)
		b := st.GetUserByName(c.UserB)
		if a == nil || b == nil {
			return Result{Success: false, Message: "User not found"}
		}
		st.AcceptFriendRequest(a.ID, b.ID)
		return Result{Success: true, Message: "Connected."}

	case FollowUser:
		follower := st.GetUserByName(c.FollowerName)
		target := st.GetUserByName(c.TargetName)
		if follower == nil || target == nil {
			return Result{Success: false, Message: "User not found"}
		}
		st.Follow(follower.ID, target.ID)
		return Result{Success: true, Message: follower.Name + " followed " + target.Name}

	default:
		return Result{Success: false, Message: "Unknown tool"}
	}
}

// Execute decodes a loosely-typed invocation (tool name plus JSON
// argument record) into a typed command and dispatches it. Unknown
// names and malformed arguments return a failure result.
func Execute(st *store.Store, name string, args json.RawMessage) Result {
	cmd, err := DecodeCommand(name, args)
	if err != nil {
		return Result{Success: false, Message: err.Error()}
	}
	return Dispatch(st, cmd)
}

// DecodeCommand maps a tool name and argument record onto a typed
// command.
func DecodeCommand(name string, args json.RawMessage) (Command, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	decode := func(dst any) error {
		if err := json.Unmarshal(args, dst); err != nil {
			return fmt.Errorf("invalid arguments for %s: %w", name, err)
		}
		return nil
	}

	switch name {
	case "create_account":
		var c CreateAccount
		return c, decode(&c)
	case "delete_account":
		var c DeleteAccount
		return c, decode(&c)
	case "update_user_profile":
		var c UpdateUserProfile
		return c, decode(&c)
	case "force_logout_all":
		return ForceLogoutAll{}, nil
	case "recover_password":
		var c RecoverPassword
		return c, decode(&c)
	case "ban_user":
		var c BanUser
		return c, decode(&c)
	case "create_post":
		var c CreatePost
		return c, decode(&c)
	case "bulk_post":
		var c BulkPost
		return c, decode(&c)
	case "create_comment":
		var c CreateComment
		return c, decode(&c)
	case "add_friend":
		var c AddFriend
		return c, decode(&c)
	case "follow_user":
		var c FollowUser
		return c, decode(&c)
	default:
		return nil, fmt.Errorf("Unknown tool")
	}
}
