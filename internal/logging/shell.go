package logging

import "io"

// ShellFunction is the bash counterpart of Log for components written
// as shell scripts (the qemu hook, guest-init scripts). It must stay
// line-compatible with Log: same timestamp format, same directory,
// same file selection with the appvm.log fallback, same stderr
// fallback when the filesystem is not writable. The contract test in
// shell_test.go holds the two surfaces together.
const ShellFunction = `log_action() {
    local component="$1"
    local action="$2"
    local message="$3"
    local timestamp
    timestamp=$(date '+%Y-%m-%d %H:%M:%S')
    local log_dir="/var/log/kvm-appvm"
    local log_file

    case "$component" in
        qemu-hook) log_file="$log_dir/qemu-hook.log" ;;
        guest-init) log_file="$log_dir/guest-init.log" ;;
        *) log_file="$log_dir/appvm.log" ;;
    esac

    mkdir -p "$log_dir" 2>/dev/null || true
    echo "[$timestamp] [$action]${message:+ $message}" >> "$log_file" 2>/dev/null || \
        echo "[$timestamp] [$action]${message:+ $message}" >&2
}
`

// WriteShellFunction emits the function for sourcing from a script,
// typically via eval "$(appvmlog snippet)".
func WriteShellFunction(w io.Writer) error {
	_, err := io.WriteString(w, ShellFunction)
	return err
}
