package types

// counter module event types and attribute keys
const (
	EventTypeChannelConnect = "counter_channel_connect"
	EventTypeRecvPacket     = "counter_recv_packet"
	EventTypePacket         = "counter_packet"
	EventTypeIncrement      = "counter_increment"
	EventTypeReset          = "counter_reset"
	EventTypeSendPacket     = "counter_send_packet"

	AttributeKeyMethod     = "method"
	AttributeKeyAction     = "action"
	AttributeKeyChannel    = "channel"
	AttributeKeyPort       = "port"
	AttributeKeyPacketType = "packet_type"
	AttributeKeySender     = "sender"
	AttributeKeyCount      = "count"
	AttributeKeySequence   = "sequence"
	AttributeKeyAckSuccess = "success"
	AttributeKeyAckError   = "error"

	MethodChannelConnect = "ibc_channel_connect"
	MethodPacketReceive  = "ibc_packet_receive"
	ActionPacketAck      = "ibc_packet_ack"
	ActionPacketTimeout  = "ibc_packet_timeout"
)
