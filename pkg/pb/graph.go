// Copyright (C) 2025 Entgraph Authors.
// See LICENSE for copying information.

// Package pb contains the wire types for the graph service. The messages
// mirror graph.proto; the protobuf struct tags carry the field numbers, so
// the two must be kept in sync.
package pb

import (
	proto "github.com/golang/protobuf/proto"
)

// ConsistencyRequirement_Mode selects the snapshot a read runs at.
type ConsistencyRequirement_Mode int32

const (
	ConsistencyRequirement_FULL_CONSISTENCY  ConsistencyRequirement_Mode = 0
	ConsistencyRequirement_AT_LEAST_AS_FRESH ConsistencyRequirement_Mode = 1
	ConsistencyRequirement_EXACTLY_AT        ConsistencyRequirement_Mode = 2
	ConsistencyRequirement_MINIMIZE_LATENCY  ConsistencyRequirement_Mode = 3
)

var ConsistencyRequirement_Mode_name = map[int32]string{
	0: "FULL_CONSISTENCY",
	1: "AT_LEAST_AS_FRESH",
	2: "EXACTLY_AT",
	3: "MINIMIZE_LATENCY",
}

var ConsistencyRequirement_Mode_value = map[string]int32{
	"FULL_CONSISTENCY":  0,
	"AT_LEAST_AS_FRESH": 1,
	"EXACTLY_AT":        2,
	"MINIMIZE_LATENCY":  3,
}

func (x ConsistencyRequirement_Mode) String() string {
	return proto.EnumName(ConsistencyRequirement_Mode_name, int32(x))
}

// Zookie is an opaque read-consistency token.
type Zookie struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
}

func (m *Zookie) Reset()         { *m = Zookie{} }
func (m *Zookie) String() string { return proto.CompactTextString(m) }
func (*Zookie) ProtoMessage()    {}

func (m *Zookie) GetToken() string {
	if m != nil {
		return m.Token
	}
	return ""
}

// ConsistencyRequirement selects the snapshot a read runs at.
type ConsistencyRequirement struct {
	Mode   ConsistencyRequirement_Mode `protobuf:"varint,1,opt,name=mode,proto3,enum=graph.ConsistencyRequirement_Mode" json:"mode,omitempty"`
	Zookie *Zookie                     `protobuf:"bytes,2,opt,name=zookie,proto3" json:"zookie,omitempty"`
}

func (m *ConsistencyRequirement) Reset()         { *m = ConsistencyRequirement{} }
func (m *ConsistencyRequirement) String() string { return proto.CompactTextString(m) }
func (*ConsistencyRequirement) ProtoMessage()    {}

func (m *ConsistencyRequirement) GetMode() ConsistencyRequirement_Mode {
	if m != nil {
		return m.Mode
	}
	return ConsistencyRequirement_FULL_CONSISTENCY
}

func (m *ConsistencyRequirement) GetZookie() *Zookie {
	if m != nil {
		return m.Zookie
	}
	return nil
}

// Object is a typed node in the graph.
type Object struct {
	Id       int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId   string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Type     string `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Metadata []byte `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *Object) Reset()         { *m = Object{} }
func (m *Object) String() string { return proto.CompactTextString(m) }
func (*Object) ProtoMessage()    {}

func (m *Object) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Object) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *Object) GetType() string {
	if m != nil {
		return m.Type
	}
	return ""
}

func (m *Object) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

// Edge is a directed relationship between two objects.
type Edge struct {
	Id       int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId   string `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromType string `protobuf:"bytes,3,opt,name=from_type,json=fromType,proto3" json:"from_type,omitempty"`
	FromId   int64  `protobuf:"varint,4,opt,name=from_id,json=fromId,proto3" json:"from_id,omitempty"`
	Relation string `protobuf:"bytes,5,opt,name=relation,proto3" json:"relation,omitempty"`
	ToType   string `protobuf:"bytes,6,opt,name=to_type,json=toType,proto3" json:"to_type,omitempty"`
	ToId     int64  `protobuf:"varint,7,opt,name=to_id,json=toId,proto3" json:"to_id,omitempty"`
	Metadata []byte `protobuf:"bytes,8,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *Edge) Reset()         { *m = Edge{} }
func (m *Edge) String() string { return proto.CompactTextString(m) }
func (*Edge) ProtoMessage()    {}

func (m *Edge) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *Edge) GetUserId() string {
	if m != nil {
		return m.UserId
	}
	return ""
}

func (m *Edge) GetFromType() string {
	if m != nil {
		return m.FromType
	}
	return ""
}

func (m *Edge) GetFromId() int64 {
	if m != nil {
		return m.FromId
	}
	return 0
}

func (m *Edge) GetRelation() string {
	if m != nil {
		return m.Relation
	}
	return ""
}

func (m *Edge) GetToType() string {
	if m != nil {
		return m.ToType
	}
	return ""
}

func (m *Edge) GetToId() int64 {
	if m != nil {
		return m.ToId
	}
	return 0
}

func (m *Edge) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type CreateSchemaRequest struct {
	TypeName    string `protobuf:"bytes,1,opt,name=type_name,json=typeName,proto3" json:"type_name,omitempty"`
	Schema      []byte `protobuf:"bytes,2,opt,name=schema,proto3" json:"schema,omitempty"`
	Description string `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *CreateSchemaRequest) Reset()         { *m = CreateSchemaRequest{} }
func (m *CreateSchemaRequest) String() string { return proto.CompactTextString(m) }
func (*CreateSchemaRequest) ProtoMessage()    {}

func (m *CreateSchemaRequest) GetTypeName() string {
	if m != nil {
		return m.TypeName
	}
	return ""
}

func (m *CreateSchemaRequest) GetSchema() []byte {
	if m != nil {
		return m.Schema
	}
	return nil
}

func (m *CreateSchemaRequest) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

type CreateSchemaResponse struct {
	Id       int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	TypeName string `protobuf:"bytes,2,opt,name=type_name,json=typeName,proto3" json:"type_name,omitempty"`
}

func (m *CreateSchemaResponse) Reset()         { *m = CreateSchemaResponse{} }
func (m *CreateSchemaResponse) String() string { return proto.CompactTextString(m) }
func (*CreateSchemaResponse) ProtoMessage()    {}

func (m *CreateSchemaResponse) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *CreateSchemaResponse) GetTypeName() string {
	if m != nil {
		return m.TypeName
	}
	return ""
}

type GetSchemaRequest struct {
	TypeName string `protobuf:"bytes,1,opt,name=type_name,json=typeName,proto3" json:"type_name,omitempty"`
}

func (m *GetSchemaRequest) Reset()         { *m = GetSchemaRequest{} }
func (m *GetSchemaRequest) String() string { return proto.CompactTextString(m) }
func (*GetSchemaRequest) ProtoMessage()    {}

func (m *GetSchemaRequest) GetTypeName() string {
	if m != nil {
		return m.TypeName
	}
	return ""
}

type GetSchemaResponse struct {
	Id          int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	TypeName    string `protobuf:"bytes,2,opt,name=type_name,json=typeName,proto3" json:"type_name,omitempty"`
	Schema      []byte `protobuf:"bytes,3,opt,name=schema,proto3" json:"schema,omitempty"`
	Description string `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
}

func (m *GetSchemaResponse) Reset()         { *m = GetSchemaResponse{} }
func (m *GetSchemaResponse) String() string { return proto.CompactTextString(m) }
func (*GetSchemaResponse) ProtoMessage()    {}

func (m *GetSchemaResponse) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *GetSchemaResponse) GetTypeName() string {
	if m != nil {
		return m.TypeName
	}
	return ""
}

func (m *GetSchemaResponse) GetSchema() []byte {
	if m != nil {
		return m.Schema
	}
	return nil
}

func (m *GetSchemaResponse) GetDescription() string {
	if m != nil {
		return m.Description
	}
	return ""
}

type GetObjectRequest struct {
	ObjectId    int64                   `protobuf:"varint,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	Consistency *ConsistencyRequirement `protobuf:"bytes,2,opt,name=consistency,proto3" json:"consistency,omitempty"`
}

func (m *GetObjectRequest) Reset()         { *m = GetObjectRequest{} }
func (m *GetObjectRequest) String() string { return proto.CompactTextString(m) }
func (*GetObjectRequest) ProtoMessage()    {}

func (m *GetObjectRequest) GetObjectId() int64 {
	if m != nil {
		return m.ObjectId
	}
	return 0
}

func (m *GetObjectRequest) GetConsistency() *ConsistencyRequirement {
	if m != nil {
		return m.Consistency
	}
	return nil
}

type GetObjectResponse struct {
	Object   *Object `protobuf:"bytes,1,opt,name=object,proto3" json:"object,omitempty"`
	Revision *Zookie `protobuf:"bytes,2,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *GetObjectResponse) Reset()         { *m = GetObjectResponse{} }
func (m *GetObjectResponse) String() string { return proto.CompactTextString(m) }
func (*GetObjectResponse) ProtoMessage()    {}

func (m *GetObjectResponse) GetObject() *Object {
	if m != nil {
		return m.Object
	}
	return nil
}

func (m *GetObjectResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type CreateObjectRequest struct {
	Type     string `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Metadata []byte `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *CreateObjectRequest) Reset()         { *m = CreateObjectRequest{} }
func (m *CreateObjectRequest) String() string { return proto.CompactTextString(m) }
func (*CreateObjectRequest) ProtoMessage()    {}

func (m *CreateObjectRequest) GetType() string {
	if m != nil {
		return m.Type
	}
	return ""
}

func (m *CreateObjectRequest) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type CreateObjectResponse struct {
	Object   *Object `protobuf:"bytes,1,opt,name=object,proto3" json:"object,omitempty"`
	Revision *Zookie `protobuf:"bytes,2,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *CreateObjectResponse) Reset()         { *m = CreateObjectResponse{} }
func (m *CreateObjectResponse) String() string { return proto.CompactTextString(m) }
func (*CreateObjectResponse) ProtoMessage()    {}

func (m *CreateObjectResponse) GetObject() *Object {
	if m != nil {
		return m.Object
	}
	return nil
}

func (m *CreateObjectResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type UpdateObjectRequest struct {
	ObjectId int64  `protobuf:"varint,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	Metadata []byte `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *UpdateObjectRequest) Reset()         { *m = UpdateObjectRequest{} }
func (m *UpdateObjectRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateObjectRequest) ProtoMessage()    {}

func (m *UpdateObjectRequest) GetObjectId() int64 {
	if m != nil {
		return m.ObjectId
	}
	return 0
}

func (m *UpdateObjectRequest) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type UpdateObjectResponse struct {
	Object   *Object `protobuf:"bytes,1,opt,name=object,proto3" json:"object,omitempty"`
	Revision *Zookie `protobuf:"bytes,2,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *UpdateObjectResponse) Reset()         { *m = UpdateObjectResponse{} }
func (m *UpdateObjectResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateObjectResponse) ProtoMessage()    {}

func (m *UpdateObjectResponse) GetObject() *Object {
	if m != nil {
		return m.Object
	}
	return nil
}

func (m *UpdateObjectResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type DeleteObjectRequest struct {
	ObjectId int64 `protobuf:"varint,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
}

func (m *DeleteObjectRequest) Reset()         { *m = DeleteObjectRequest{} }
func (m *DeleteObjectRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteObjectRequest) ProtoMessage()    {}

func (m *DeleteObjectRequest) GetObjectId() int64 {
	if m != nil {
		return m.ObjectId
	}
	return 0
}

type DeleteObjectResponse struct {
	Revision *Zookie `protobuf:"bytes,1,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *DeleteObjectResponse) Reset()         { *m = DeleteObjectResponse{} }
func (m *DeleteObjectResponse) String() string { return proto.CompactTextString(m) }
func (*DeleteObjectResponse) ProtoMessage()    {}

func (m *DeleteObjectResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type GetEdgeRequest struct {
	ObjectId    int64                   `protobuf:"varint,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	Relation    string                  `protobuf:"bytes,2,opt,name=relation,proto3" json:"relation,omitempty"`
	Consistency *ConsistencyRequirement `protobuf:"bytes,3,opt,name=consistency,proto3" json:"consistency,omitempty"`
}

func (m *GetEdgeRequest) Reset()         { *m = GetEdgeRequest{} }
func (m *GetEdgeRequest) String() string { return proto.CompactTextString(m) }
func (*GetEdgeRequest) ProtoMessage()    {}

func (m *GetEdgeRequest) GetObjectId() int64 {
	if m != nil {
		return m.ObjectId
	}
	return 0
}

func (m *GetEdgeRequest) GetRelation() string {
	if m != nil {
		return m.Relation
	}
	return ""
}

func (m *GetEdgeRequest) GetConsistency() *ConsistencyRequirement {
	if m != nil {
		return m.Consistency
	}
	return nil
}

type GetEdgeResponse struct {
	Edge     *Edge   `protobuf:"bytes,1,opt,name=edge,proto3" json:"edge,omitempty"`
	Target   *Object `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	Revision *Zookie `protobuf:"bytes,3,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *GetEdgeResponse) Reset()         { *m = GetEdgeResponse{} }
func (m *GetEdgeResponse) String() string { return proto.CompactTextString(m) }
func (*GetEdgeResponse) ProtoMessage()    {}

func (m *GetEdgeResponse) GetEdge() *Edge {
	if m != nil {
		return m.Edge
	}
	return nil
}

func (m *GetEdgeResponse) GetTarget() *Object {
	if m != nil {
		return m.Target
	}
	return nil
}

func (m *GetEdgeResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type GetEdgesRequest struct {
	ObjectId    int64                   `protobuf:"varint,1,opt,name=object_id,json=objectId,proto3" json:"object_id,omitempty"`
	Relation    string                  `protobuf:"bytes,2,opt,name=relation,proto3" json:"relation,omitempty"`
	Consistency *ConsistencyRequirement `protobuf:"bytes,3,opt,name=consistency,proto3" json:"consistency,omitempty"`
}

func (m *GetEdgesRequest) Reset()         { *m = GetEdgesRequest{} }
func (m *GetEdgesRequest) String() string { return proto.CompactTextString(m) }
func (*GetEdgesRequest) ProtoMessage()    {}

func (m *GetEdgesRequest) GetObjectId() int64 {
	if m != nil {
		return m.ObjectId
	}
	return 0
}

func (m *GetEdgesRequest) GetRelation() string {
	if m != nil {
		return m.Relation
	}
	return ""
}

func (m *GetEdgesRequest) GetConsistency() *ConsistencyRequirement {
	if m != nil {
		return m.Consistency
	}
	return nil
}

type GetEdgesResponse struct {
	Targets  []*Object `protobuf:"bytes,1,rep,name=targets,proto3" json:"targets,omitempty"`
	Revision *Zookie   `protobuf:"bytes,2,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *GetEdgesResponse) Reset()         { *m = GetEdgesResponse{} }
func (m *GetEdgesResponse) String() string { return proto.CompactTextString(m) }
func (*GetEdgesResponse) ProtoMessage()    {}

func (m *GetEdgesResponse) GetTargets() []*Object {
	if m != nil {
		return m.Targets
	}
	return nil
}

func (m *GetEdgesResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type CreateEdgeRequest struct {
	FromType string `protobuf:"bytes,1,opt,name=from_type,json=fromType,proto3" json:"from_type,omitempty"`
	FromId   int64  `protobuf:"varint,2,opt,name=from_id,json=fromId,proto3" json:"from_id,omitempty"`
	Relation string `protobuf:"bytes,3,opt,name=relation,proto3" json:"relation,omitempty"`
	ToType   string `protobuf:"bytes,4,opt,name=to_type,json=toType,proto3" json:"to_type,omitempty"`
	ToId     int64  `protobuf:"varint,5,opt,name=to_id,json=toId,proto3" json:"to_id,omitempty"`
	Metadata []byte `protobuf:"bytes,6,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *CreateEdgeRequest) Reset()         { *m = CreateEdgeRequest{} }
func (m *CreateEdgeRequest) String() string { return proto.CompactTextString(m) }
func (*CreateEdgeRequest) ProtoMessage()    {}

func (m *CreateEdgeRequest) GetFromType() string {
	if m != nil {
		return m.FromType
	}
	return ""
}

func (m *CreateEdgeRequest) GetFromId() int64 {
	if m != nil {
		return m.FromId
	}
	return 0
}

func (m *CreateEdgeRequest) GetRelation() string {
	if m != nil {
		return m.Relation
	}
	return ""
}

func (m *CreateEdgeRequest) GetToType() string {
	if m != nil {
		return m.ToType
	}
	return ""
}

func (m *CreateEdgeRequest) GetToId() int64 {
	if m != nil {
		return m.ToId
	}
	return 0
}

func (m *CreateEdgeRequest) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type CreateEdgeResponse struct {
	Edge     *Edge   `protobuf:"bytes,1,opt,name=edge,proto3" json:"edge,omitempty"`
	Revision *Zookie `protobuf:"bytes,2,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *CreateEdgeResponse) Reset()         { *m = CreateEdgeResponse{} }
func (m *CreateEdgeResponse) String() string { return proto.CompactTextString(m) }
func (*CreateEdgeResponse) ProtoMessage()    {}

func (m *CreateEdgeResponse) GetEdge() *Edge {
	if m != nil {
		return m.Edge
	}
	return nil
}

func (m *CreateEdgeResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type UpdateEdgeRequest struct {
	EdgeId   int64  `protobuf:"varint,1,opt,name=edge_id,json=edgeId,proto3" json:"edge_id,omitempty"`
	Metadata []byte `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *UpdateEdgeRequest) Reset()         { *m = UpdateEdgeRequest{} }
func (m *UpdateEdgeRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateEdgeRequest) ProtoMessage()    {}

func (m *UpdateEdgeRequest) GetEdgeId() int64 {
	if m != nil {
		return m.EdgeId
	}
	return 0
}

func (m *UpdateEdgeRequest) GetMetadata() []byte {
	if m != nil {
		return m.Metadata
	}
	return nil
}

type UpdateEdgeResponse struct {
	Edge     *Edge   `protobuf:"bytes,1,opt,name=edge,proto3" json:"edge,omitempty"`
	Revision *Zookie `protobuf:"bytes,2,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *UpdateEdgeResponse) Reset()         { *m = UpdateEdgeResponse{} }
func (m *UpdateEdgeResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateEdgeResponse) ProtoMessage()    {}

func (m *UpdateEdgeResponse) GetEdge() *Edge {
	if m != nil {
		return m.Edge
	}
	return nil
}

func (m *UpdateEdgeResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

type DeleteEdgeRequest struct {
	EdgeId int64 `protobuf:"varint,1,opt,name=edge_id,json=edgeId,proto3" json:"edge_id,omitempty"`
}

func (m *DeleteEdgeRequest) Reset()         { *m = DeleteEdgeRequest{} }
func (m *DeleteEdgeRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteEdgeRequest) ProtoMessage()    {}

func (m *DeleteEdgeRequest) GetEdgeId() int64 {
	if m != nil {
		return m.EdgeId
	}
	return 0
}

type DeleteEdgeResponse struct {
	Revision *Zookie `protobuf:"bytes,1,opt,name=revision,proto3" json:"revision,omitempty"`
}

func (m *DeleteEdgeResponse) Reset()         { *m = DeleteEdgeResponse{} }
func (m *DeleteEdgeResponse) String() string { return proto.CompactTextString(m) }
func (*DeleteEdgeResponse) ProtoMessage()    {}

func (m *DeleteEdgeResponse) GetRevision() *Zookie {
	if m != nil {
		return m.Revision
	}
	return nil
}

func init() {
	proto.RegisterEnum("graph.ConsistencyRequirement_Mode", ConsistencyRequirement_Mode_name, ConsistencyRequirement_Mode_value)
	proto.RegisterType((*Zookie)(nil), "graph.Zookie")
	proto.RegisterType((*ConsistencyRequirement)(nil), "graph.ConsistencyRequirement")
	proto.RegisterType((*Object)(nil), "graph.Object")
	proto.RegisterType((*Edge)(nil), "graph.Edge")
	proto.RegisterType((*CreateSchemaRequest)(nil), "graph.CreateSchemaRequest")
	proto.RegisterType((*CreateSchemaResponse)(nil), "graph.CreateSchemaResponse")
	proto.RegisterType((*GetSchemaRequest)(nil), "graph.GetSchemaRequest")
	proto.RegisterType((*GetSchemaResponse)(nil), "graph.GetSchemaResponse")
	proto.RegisterType((*GetObjectRequest)(nil), "graph.GetObjectRequest")
	proto.RegisterType((*GetObjectResponse)(nil), "graph.GetObjectResponse")
	proto.RegisterType((*CreateObjectRequest)(nil), "graph.CreateObjectRequest")
	proto.RegisterType((*CreateObjectResponse)(nil), "graph.CreateObjectResponse")
	proto.RegisterType((*UpdateObjectRequest)(nil), "graph.UpdateObjectRequest")
	proto.RegisterType((*UpdateObjectResponse)(nil), "graph.UpdateObjectResponse")
	proto.RegisterType((*DeleteObjectRequest)(nil), "graph.DeleteObjectRequest")
	proto.RegisterType((*DeleteObjectResponse)(nil), "graph.DeleteObjectResponse")
	proto.RegisterType((*GetEdgeRequest)(nil), "graph.GetEdgeRequest")
	proto.RegisterType((*GetEdgeResponse)(nil), "graph.GetEdgeResponse")
	proto.RegisterType((*GetEdgesRequest)(nil), "graph.GetEdgesRequest")
	proto.RegisterType((*GetEdgesResponse)(nil), "graph.GetEdgesResponse")
	proto.RegisterType((*CreateEdgeRequest)(nil), "graph.CreateEdgeRequest")
	proto.RegisterType((*CreateEdgeResponse)(nil), "graph.CreateEdgeResponse")
	proto.RegisterType((*UpdateEdgeRequest)(nil), "graph.UpdateEdgeRequest")
	proto.RegisterType((*UpdateEdgeResponse)(nil), "graph.UpdateEdgeResponse")
	proto.RegisterType((*DeleteEdgeRequest)(nil), "graph.DeleteEdgeRequest")
	proto.RegisterType((*DeleteEdgeResponse)(nil), "graph.DeleteEdgeResponse")
}
