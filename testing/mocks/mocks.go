package mocks

//go:generate mockgen -package mocks -destination io.go -mock_names Writer=Writer io Writer
//go:generate mockgen -package mocks -destination net.go -mock_names Listener=Listener,Conn=Conn net Listener,Conn
