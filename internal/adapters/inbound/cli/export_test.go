package cli

var WriteAndClose = writeAndClose
