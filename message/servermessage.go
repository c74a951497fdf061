package message

import (
    "encoding/json"
    "errors"
    "fmt"
    "time"
)

type SType int
const (
    STypeNone SType = iota
    InternalError
    YourIdentity
    NotifyLobby
    NotifySignup
    NotifySignin
    NotifyConfirmEmail
    NotifyNotification
    HotDeploy
    NotifyFullGame
    NotifyCreateGame
    NotifySitdown
    NotifyStartGame
    NotifyRound
    NotifyComplete
)
var STypeNames = map[SType]string {
    STypeNone: "STypeNone",
    InternalError: "InternalError",
    YourIdentity: "YourIdentity",
    NotifyLobby: "NotifyLobby",
    NotifySignup: "NotifySignup",
    NotifySignin: "NotifySignin",
    NotifyConfirmEmail: "NotifyConfirmEmail",
    NotifyNotification: "NotifyNotification",
    HotDeploy: "HotDeploy",
    NotifyFullGame: "NotifyFullGame",
    NotifyCreateGame: "NotifyCreateGame",
    NotifySitdown: "NotifySitdown",
    NotifyStartGame: "NotifyStartGame",
    NotifyRound: "NotifyRound",
    NotifyComplete: "NotifyComplete",
}

func (t SType) String() string {
    return fmt.Sprintf("%s", STypeNames[t])
}

type Server struct {
    SType SType
    Time time.Time
    Data interface{}
}

func UnmarshalServer(bytes []byte) (Server, error) {
    var s Server
    err := json.Unmarshal(bytes, &s)
    if err != nil {
        return Server{}, err
    }
    var moreBytes []byte
    moreBytes, err = json.Marshal(s.Data)
    if err != nil {
        return Server{}, err
    }

    switch t := s.SType; t {
        case InternalError:
            var d InternalErrorData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case YourIdentity:
            var d YourIdentityData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyLobby:
            var d NotifyLobbyData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifySignup:
            var d NotifySignupData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifySignin:
            var d NotifySigninData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyConfirmEmail:
            var d NotifyConfirmEmailData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyNotification:
            var d NotifyNotificationData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case HotDeploy:
            var d HotDeployData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyFullGame:
            var d NotifyFullGameData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyCreateGame:
            var d NotifyCreateGameData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifySitdown:
            var d NotifySitdownData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyStartGame:
            var d NotifyStartGameData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyRound:
            var d NotifyRoundData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        case NotifyComplete:
            var d NotifyCompleteData
            err = json.Unmarshal(moreBytes, &d)
            s.Data = d
        default:
            return Server{}, errors.New(fmt.Sprintf("Unknown SType: %d", s.SType))
    }
    if err != nil {
        return Server{}, err
    }
    return s, nil
}
