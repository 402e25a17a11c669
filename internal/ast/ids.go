package ast

type (
	// Top-level entities.
	FileID uint32
	DeclID uint32
	// Class members and their parts.
	MemberID    uint32
	DecoratorID uint32
	ExprID      uint32
	TypeID      uint32
	ParamID     uint32
	// PayloadID indexes the per-kind payload arena matching a node's kind.
	PayloadID uint32
)

const (
	NoFileID      FileID      = 0
	NoDeclID      DeclID      = 0
	NoMemberID    MemberID    = 0
	NoDecoratorID DecoratorID = 0
	NoExprID      ExprID      = 0
	NoTypeID      TypeID      = 0
	NoParamID     ParamID     = 0
	NoPayloadID   PayloadID   = 0
)

func (id FileID) IsValid() bool      { return id != NoFileID }
func (id DeclID) IsValid() bool      { return id != NoDeclID }
func (id MemberID) IsValid() bool    { return id != NoMemberID }
func (id DecoratorID) IsValid() bool { return id != NoDecoratorID }
func (id ExprID) IsValid() bool      { return id != NoExprID }
func (id TypeID) IsValid() bool      { return id != NoTypeID }
func (id ParamID) IsValid() bool     { return id != NoParamID }
func (id PayloadID) IsValid() bool   { return id != NoPayloadID }
