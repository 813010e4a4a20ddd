package swoqv1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File describes api/proto/swoq/v1/swoq.proto. Changes to the schema must be
// made in both places.
var File = buildFile(fileProto())

func buildFile(fdp *descriptorpb.FileDescriptorProto) protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(fdp, new(protoregistry.Files))
	if err != nil {
		panic(fmt.Sprintf("swoqv1: build %s: %v", fdp.GetName(), err))
	}
	return fd
}

func fileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("swoq/v1/swoq.proto"),
		Package: proto.String("swoq.v1"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/louisbranch/swoq/internal/api/swoqv1"),
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enumType("StartResult",
				"START_RESULT_OK",
				"START_RESULT_INTERNAL_ERROR",
				"START_RESULT_UNKNOWN_USER",
				"START_RESULT_QUEST_QUEUED",
				"START_RESULT_LEVEL_NOT_AVAILABLE",
			),
			enumType("ActResult",
				"ACT_RESULT_OK",
				"ACT_RESULT_INTERNAL_ERROR",
				"ACT_RESULT_UNKNOWN_GAME_ID",
				"ACT_RESULT_MOVE_NOT_ALLOWED",
				"ACT_RESULT_USE_NOT_ALLOWED",
				"ACT_RESULT_UNKNOWN_ACTION",
				"ACT_RESULT_GAME_FINISHED",
				"ACT_RESULT_PLAYER1_NOT_PRESENT",
				"ACT_RESULT_PLAYER2_NOT_PRESENT",
				"ACT_RESULT_INVENTORY_FULL",
				"ACT_RESULT_INVENTORY_EMPTY",
				"ACT_RESULT_NO_SWORD",
			),
			enumType("GameStatus",
				"GAME_STATUS_ACTIVE",
				"GAME_STATUS_FINISHED_SUCCESS",
				"GAME_STATUS_FINISHED_TIMEOUT",
				"GAME_STATUS_FINISHED_NO_PROGRESS",
				"GAME_STATUS_FINISHED_PLAYER_DIED",
				"GAME_STATUS_FINISHED_PLAYER2_DIED",
			),
			enumType("DirectedAction",
				"DIRECTED_ACTION_NONE",
				"DIRECTED_ACTION_MOVE_NORTH",
				"DIRECTED_ACTION_MOVE_EAST",
				"DIRECTED_ACTION_MOVE_SOUTH",
				"DIRECTED_ACTION_MOVE_WEST",
				"DIRECTED_ACTION_USE_NORTH",
				"DIRECTED_ACTION_USE_EAST",
				"DIRECTED_ACTION_USE_SOUTH",
				"DIRECTED_ACTION_USE_WEST",
			),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			messageType("StartRequest",
				scalarField("user_id", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("user_name", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				optional(scalarField("level", 3, descriptorpb.FieldDescriptorProto_TYPE_INT32)),
				optional(scalarField("seed", 4, descriptorpb.FieldDescriptorProto_TYPE_INT32)),
			),
			messageType("StartResponse",
				enumField("result", 1, "StartResult"),
				optional(scalarField("game_id", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING)),
				optional(scalarField("map_width", 3, descriptorpb.FieldDescriptorProto_TYPE_INT32)),
				optional(scalarField("map_height", 4, descriptorpb.FieldDescriptorProto_TYPE_INT32)),
				optional(scalarField("visibility_range", 5, descriptorpb.FieldDescriptorProto_TYPE_INT32)),
				messageField("state", 6, "State"),
				optional(scalarField("seed", 7, descriptorpb.FieldDescriptorProto_TYPE_INT32)),
			),
			messageType("ActRequest",
				scalarField("game_id", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				optional(enumField("action", 2, "DirectedAction")),
				optional(enumField("action2", 3, "DirectedAction")),
			),
			messageType("ActResponse",
				enumField("result", 1, "ActResult"),
				messageField("state", 2, "State"),
			),
			messageType("State",
				scalarField("tick", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32),
				scalarField("level", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32),
				enumField("status", 3, "GameStatus"),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("GameService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				{Name: proto.String("Start"), InputType: qualified("StartRequest"), OutputType: qualified("StartResponse")},
				{Name: proto.String("Act"), InputType: qualified("ActRequest"), OutputType: qualified("ActResponse")},
			},
		}},
	}
}

func qualified(name string) *string {
	return proto.String(".swoq.v1." + name)
}

// enumType numbers values in declaration order from zero.
func enumType(name string, values ...string) *descriptorpb.EnumDescriptorProto {
	e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i, value := range values {
		e.Value = append(e.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(value),
			Number: proto.Int32(int32(i)),
		})
	}
	return e
}

// messageType declares the synthetic oneof that protoc generates for each
// proto3 optional field.
func messageType(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	m := &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
	for _, f := range fields {
		if !f.GetProto3Optional() {
			continue
		}
		f.OneofIndex = proto.Int32(int32(len(m.OneofDecl)))
		m.OneofDecl = append(m.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String("_" + f.GetName())})
	}
	return m
}

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func enumField(name string, number int32, enum string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = qualified(enum)
	return f
}

func messageField(name string, number int32, message string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = qualified(message)
	return f
}

func optional(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Proto3Optional = proto.Bool(true)
	return f
}

func messageDescriptor(name protoreflect.Name) protoreflect.MessageDescriptor {
	md := File.Messages().ByName(name)
	if md == nil {
		panic(fmt.Sprintf("swoqv1: message %s not in schema", name))
	}
	return md
}

func fieldDescriptor(md protoreflect.MessageDescriptor, name protoreflect.Name) protoreflect.FieldDescriptor {
	fd := md.Fields().ByName(name)
	if fd == nil {
		panic(fmt.Sprintf("swoqv1: field %s.%s not in schema", md.FullName(), name))
	}
	return fd
}

func enumDescriptor(name protoreflect.Name) protoreflect.EnumDescriptor {
	ed := File.Enums().ByName(name)
	if ed == nil {
		panic(fmt.Sprintf("swoqv1: enum %s not in schema", name))
	}
	return ed
}
