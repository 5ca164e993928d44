package driven

import websocketdto "bookmycar/internal/booking-service/core/domain/websocket_dto"

type INotifyWebsocket interface {
	Notify(userID string, event websocketdto.Event)
}
