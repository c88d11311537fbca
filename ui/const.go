package ui

// defaultDialogTitle is used when Options.DialogTitle is empty
const defaultDialogTitle = "Settings"

// quitMenuLabel is the label of the fallback quit item
const quitMenuLabel = "Quit"
