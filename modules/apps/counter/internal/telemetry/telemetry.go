package telemetry

import (
	"strconv"

	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/cosmos/ibc-counter/modules/apps/counter/types"
	coremetrics "github.com/cosmos/ibc-go/v10/modules/core/metrics"
)

const (
	labelPacketType = "packet_type"
	labelSuccess    = "success"
)

// ReportOnRecvPacket counts received counter packets by source and outcome.
func ReportOnRecvPacket(sourcePort, sourceChannel, packetType string, success bool) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "receive"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
			telemetry.NewLabel(labelPacketType, packetType),
			telemetry.NewLabel(labelSuccess, strconv.FormatBool(success)),
		},
	)
}

// ReportSendPacket counts counter packets sent over the bound endpoint.
func ReportSendPacket(sourcePort, sourceChannel, packetType string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "send"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(coremetrics.LabelSourcePort, sourcePort),
			telemetry.NewLabel(coremetrics.LabelSourceChannel, sourceChannel),
			telemetry.NewLabel(labelPacketType, packetType),
		},
	)
}

// ReportIncrement counts counter increments.
func ReportIncrement() {
	telemetry.IncrCounter(1, "ibc", types.ModuleName, "increment")
}

// ReportReset counts counter resets.
func ReportReset() {
	telemetry.IncrCounter(1, "ibc", types.ModuleName, "reset")
}
