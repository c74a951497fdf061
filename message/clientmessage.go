package message

import (
    "fmt"
    "errors"
    "encoding/json"
)

type CType int
const (
    CTypeNone CType = iota
    RequestSignup
    RequestSignin
    CreateGame
    RequestSitdown
    RequestSitdownBot
    StartGame
    DoMove
)
var CTypeNames = map[CType]string {
    CTypeNone: "CTypeNone",
    RequestSignup: "RequestSignup",
    RequestSignin: "RequestSignin",
    CreateGame: "CreateGame",
    RequestSitdown: "RequestSitdown",
    RequestSitdownBot: "RequestSitdownBot",
    StartGame: "StartGame",
    DoMove: "DoMove",
}
func (t CType) String() string {
    return fmt.Sprintf("%s", CTypeNames[t])
}

func UnmarshalClient(bytes []byte) (Client, error) {
    var c Client
    err := json.Unmarshal(bytes, &c)
    if err != nil {
        return Client{}, err
    }
    var moreBytes []byte
    moreBytes, err = json.Marshal(c.Data)
    if err != nil {
        return Client{}, err
    }

    switch t := c.CType; t {
        case RequestSignup:
            var d RequestSignupData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case RequestSignin:
            var d RequestSigninData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case CreateGame:
            var d CreateGameData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case RequestSitdown:
            var d RequestSitdownData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case RequestSitdownBot:
            var d RequestSitdownBotData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case StartGame:
            var d StartGameData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        case DoMove:
            var d DoMoveData
            err = json.Unmarshal(moreBytes, &d)
            c.Data = d
        default:
            return Client{}, errors.New(fmt.Sprintf("Unknown CType: %d", c.CType))
    }
    if err != nil {
        return Client{}, err
    }
    return c, nil
}

type Client struct {
    CType CType
    Data interface{}
}

type RequestSignupData struct {
    Email string
    Username string
    Password string
}

type RequestSigninData struct {
    Email string
    Password string
}

type CreateGameData struct {
}

type RequestSitdownData struct {
    Index int
    Sitdown bool
}

type RequestSitdownBotData struct {
    Id string
    Index int
    Sitdown bool
}

type StartGameData struct {
}
