package config

// orderedGroups holds class lists that are already in canonical order under
// the built-in configuration.
var orderedGroups = []struct {
	name    string
	classes []string
}{
	{"non-framework classes then container", []string{
		"select2-container", "container", "m-2", "font-bold", "text-xl",
	}},
	{"margin before padding", []string{
		"m-2", "mx-64", "my-128", "mt-4", "mr-8", "mb-16", "ml-32", "p-1", "px-32", "py-64", "pt-2",
		"pr-4", "pb-8", "pl-16",
	}},
	{"bare shortcuts before sized", []string{
		"rounded", "rounded-md", "border", "border-1", "-border-rounded-1", "border-2",
		"border-rounded-2", "ring", "ring-8", "outline", "outline-2", "outline-offset-2",
		"-outline-offset-3", "outline-rounded", "shadow", "shadow-lg", "blur", "blur-sm", "grayscale",
		"grayscale-0", "invert", "invert-0", "sepia", "sepia-0", "drop-shadow", "drop-shadow-md",
		"transform", "transform-gpu", "transition", "transition-all",
	}},
	{"negative values keep order", []string{
		"m-2", "-mx-64", "-my-128", "mt-4", "-mr-8", "mb-16", "-ml-32", "p-1", "-px-32", "py-64",
		"-pt-2", "-pr-4", "pb-8", "pl-16",
	}},
	{"negative values under variants", []string{
		"-m-1", "sm:-m-2", "md:-m-3", "lg:-m-4", "xl:-m-5", "2xl:-m-6", "3xl:-m-7",
	}},
	{"sizing", []string{
		"size-4", "w-10", "min-w-full", "max-w-md", "h-12", "min-h-screen", "max-h-96", "aspect-square",
	}},
	{"sizing with arbitrary values", []string{
		"size-[40px]", "w-[72rem]", "min-w-[320px]", "max-w-5xl", "h-[calc(100vh-4rem)]", "min-h-[60vh]",
		"max-h-[800px]", "aspect-[3/2]",
	}},
	{"min and max variants", []string{
		"text-base", "min-[320px]:text-sm", "max-[1024px]:hidden", "max-[320px]:text-sm",
	}},
	{"font then text then color", []string{
		"font-light", "text-xl", "text-black/90", "text-red-400", "text-pretty",
	}},
	{"breakpoints", []string{
		"p-2", "font-light", "text-sm", "text-gray-600", "sm:p-4", "sm:font-normal", "sm:text-gray-700",
		"sm:text-base", "md:p-6", "md:font-medium", "md:text-lg", "md:text-gray-800", "lg:p-8",
		"lg:font-semibold", "lg:text-xl", "lg:text-gray-900", "xl:p-10", "xl:font-bold", "xl:text-2xl",
		"xl:text-black", "2xl:p-12", "2xl:font-extrabold", "2xl:text-3xl", "2xl:text-black/90",
	}},
	{"structural pseudo-classes", []string{
		"first:border-t-0", "last:border-b-0", "odd:bg-gray-100", "even:bg-white",
	}},
	{"dark and stacked variants", []string{
		"dark:text-white", "dark:md:hover:text-blue-300", "dark:lg:hover:bg-gray-900",
		"sm:disabled:opacity-50", "md:first:px-4", "md:focus:text-white", "lg:text-xl",
		"lg:focus:hover:bg-blue-500", "first:mt-0", "hover:bg-red-500", "focus:text-black",
		"group-hover:bg-blue-500", "peer-checked:bg-green-500",
	}},
	{"border direction value color", []string{
		"border-1", "border-red-400", "border-t-2", "border-t-blue-500", "dark:border-1",
		"dark:border-red-400", "dark:border-t-2", "dark:border-t-blue-500", "sm:border-1",
		"sm:border-red-400", "sm:border-t-2", "sm:border-t-blue-500", "focus:border-1",
		"focus:border-red-400", "focus:border-t-2", "focus:border-t-blue-500", "focus:sm:border-1",
		"focus:sm:border-red-400", "focus:sm:border-t-2", "focus:sm:border-t-blue-500",
		"focus:lg:border-1", "focus:lg:border-red-400", "focus:lg:border-t-2",
		"focus:lg:border-t-blue-500",
	}},
	{"grid columns rows gap", []string{
		"grid", "grid-cols-[200px_1fr_2fr]", "grid-rows-4", "gap-4",
	}},
	{"gradient stops", []string{
		"m-4", "bg-gradient-to-br", "from-pink-500", "via-red-500", "to-yellow-500",
	}},
	{"backdrop filters", []string{
		"p-6", "bg-white/50", "backdrop-blur-md", "backdrop-brightness-75", "backdrop-contrast-125",
	}},
	{"arbitrary selector variants", []string{
		"p-2", "[&>*]:p-4", "[&_a]:text-blue-500", "[&_a]:hover:underline",
	}},
	{"before and after content", []string{
		"before:content-['']", "before:content-['★']", "after:content-['>']",
	}},
	{"standalone utilities", []string{
		"hidden", "grow", "grow-0", "shrink", "shrink-0", "truncate", "truncate-0",
	}},
	{"grid columns before rows", []string{
		"grid", "grid-cols-2", "grid-rows-4", "gap-4",
	}},
	{"flex direction and wrap", []string{
		"flex", "flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse", "items-stretch",
	}},
	{"gap axes", []string{
		"grid", "gap-2", "gap-x-2", "gap-y-2", "space-x-2", "space-y-2",
	}},
	{"container queries before variants", []string{
		"p-4", "@container:p-4", "@lg:text-xl", "@xl:grid-cols-3", "dark:p-4", "lg:p-4", "xl:p-4",
	}},
	{"inset sides", []string{
		"top-[10px]", "right-[20px]", "bottom-[30px]", "left-[40px]",
	}},
	{"rounded corners", []string{
		"rounded", "rounded-xs", "rounded-sm", "rounded-md", "rounded-lg", "rounded-xl", "rounded-t-sm",
		"rounded-tr-xs", "rounded-r-md", "rounded-br-md", "rounded-b-xs", "rounded-bl-xl",
		"rounded-l-sm", "rounded-tl-lg",
	}},
	{"interactive states", []string{
		"bg-blue-500", "hover:bg-blue-600", "focus:bg-blue-700", "focus-visible:ring-2",
		"active:bg-blue-800",
	}},
	{"group and peer", []string{
		"text-gray-500", "hover:text-gray-600", "group-hover:text-gray-700", "group-focus:text-gray-800",
		"peer-hover:text-gray-600", "peer-checked:text-green-500",
	}},
	{"text sizes", []string{
		"text-xs", "text-sm", "text-lg", "text-xl", "text-2xl", "text-3xl",
	}},
	{"blur sizes", []string{
		"blur", "blur-sm", "blur-md", "blur-lg", "blur-xl", "blur-2xl", "blur-3xl",
	}},
	{"inset axes and sides", []string{
		"inset-0", "inset-x-0", "inset-y-0", "top-0", "right-0", "bottom-0", "left-0",
	}},
	{"divide", []string{
		"divide-gray-200", "divide-x-2", "divide-y-4",
	}},
	{"scroll margin", []string{
		"scroll-m-4", "scroll-mx-4", "scroll-my-4", "scroll-mt-4", "scroll-mr-4", "scroll-mb-4",
		"scroll-ml-4",
	}},
	{"stacked variants with directions", []string{
		"border-2", "border-t-4", "sm:border-2", "sm:border-t-4", "sm:hover:border-2",
		"sm:hover:border-t-4", "lg:hover:border-2", "lg:hover:border-t-4", "hover:border-2",
		"hover:border-t-4",
	}},
	{"alpha values", []string{
		"bg-black/0", "bg-black/25", "bg-black/50", "bg-black/75", "bg-black/100",
	}},
	{"color shades", []string{
		"text-blue-50", "text-blue-500", "text-blue-950", "text-red-50", "text-red-500", "text-red-950",
	}},
	{"ring", []string{
		"ring", "ring-1", "ring-2", "ring-blue-500", "ring-offset-2", "ring-offset-blue-500",
	}},
	{"z-index", []string{
		"z-0", "z-10", "z-20", "z-50",
	}},
	{"translate", []string{
		"translate-x-0", "translate-x-4", "translate-y-0", "translate-y-4",
	}},
	{"scale", []string{
		"scale-0", "scale-50", "scale-100", "scale-x-50", "scale-y-50",
	}},
	{"rotate", []string{
		"rotate-0", "rotate-180", "rotate-45", "rotate-90",
	}},
	{"transition and animation", []string{
		"transition", "transition-all", "duration-100", "duration-200", "duration-300", "ease-in",
		"ease-out", "delay-100", "delay-200", "animate-ping", "animate-spin",
	}},
	{"cursor", []string{
		"cursor-auto", "cursor-not-allowed", "cursor-pointer", "cursor-wait",
	}},
	{"overflow", []string{
		"overflow-auto", "overflow-hidden", "overflow-x-auto", "overflow-y-hidden",
	}},
	{"object fit and position", []string{
		"object-center", "object-contain", "object-cover", "object-top",
	}},
	{"important modifier", []string{
		"!m-0", "m-4", "!p-0", "p-4",
	}},
	{"aria variants", []string{
		"bg-gray-100", "aria-checked:bg-blue-500", "aria-disabled:opacity-50",
		"aria-expanded:rotate-180",
	}},
	{"data variants", []string{
		"text-gray-500", "data-active:text-blue-500", "data-disabled:opacity-50",
	}},
	{"print variant", []string{
		"block", "print:hidden",
	}},
	{"motion variants", []string{
		"transition-transform", "motion-safe:transition-all", "motion-reduce:transition-none",
	}},
	{"contrast variants", []string{
		"text-gray-600", "contrast-more:text-gray-900", "contrast-less:text-gray-400",
	}},
	{"placeholder", []string{
		"text-gray-900", "placeholder:text-gray-400", "placeholder:italic",
	}},
	{"selection", []string{
		"text-black", "selection:text-white", "selection:bg-blue-500",
	}},
	{"file input", []string{
		"text-sm", "file:mr-4", "file:text-white", "file:bg-blue-500", "file:rounded", "file:border-0",
	}},
	{"marker", []string{
		"list-disc", "marker:text-blue-500",
	}},
	{"first letter and line", []string{
		"text-base", "first-letter:font-bold", "first-letter:text-4xl", "first-line:uppercase",
	}},
	{"backdrop pseudo-element", []string{
		"bg-white", "backdrop:bg-black/50",
	}},
	{"button", []string{
		"inline-flex", "gap-2", "items-center", "justify-center", "px-4", "py-2", "font-medium",
		"text-sm", "text-white", "bg-blue-500", "rounded-lg", "shadow-sm", "transition-colors",
		"duration-200", "disabled:opacity-50", "disabled:cursor-not-allowed", "hover:bg-blue-600",
		"focus:ring-2", "focus:ring-blue-500", "focus:ring-offset-2", "focus:outline-none",
	}},
	{"card", []string{
		"relative", "flex", "flex-col", "gap-4", "p-6", "bg-white", "rounded-xl", "border",
		"border-gray-200", "shadow-lg", "dark:bg-gray-800", "dark:border-gray-700",
		"hover:border-gray-300", "hover:shadow-xl",
	}},
	{"input", []string{
		"block", "w-full", "px-3", "py-2", "text-sm", "text-gray-900", "bg-white", "rounded-md",
		"border", "border-gray-300", "shadow-sm", "disabled:text-gray-500", "disabled:bg-gray-50",
		"focus:border-blue-500", "focus:ring-1", "focus:ring-blue-500", "focus:outline-none",
		"placeholder:text-gray-400",
	}},
	{"logical properties", []string{
		"ms-4", "me-4", "ps-4", "pe-4",
	}},
	{"line clamp", []string{
		"line-clamp-1", "line-clamp-2", "line-clamp-3",
	}},
	{"columns", []string{
		"columns-1", "columns-2", "columns-3",
	}},
	{"aspect ratio", []string{
		"aspect-auto", "aspect-square", "aspect-video",
	}},
	{"break before after inside", []string{
		"break-inside-auto", "break-inside-avoid", "break-before-auto", "break-after-auto",
	}},
	{"will-change", []string{
		"will-change-auto", "will-change-contents", "will-change-scroll", "will-change-transform",
	}},
	{"touch action", []string{
		"touch-auto", "touch-manipulation", "touch-none",
	}},
	{"accent color", []string{
		"accent-blue-500", "accent-pink-500", "accent-auto",
	}},
	{"caret color", []string{
		"caret-black", "caret-blue-500", "caret-transparent",
	}},
	{"scroll snap", []string{
		"snap-center", "snap-end", "snap-start", "snap-x", "snap-y",
	}},
	{"scroll padding", []string{
		"scroll-p-4", "scroll-px-4", "scroll-py-4", "scroll-pt-4", "scroll-pb-4",
	}},
	{"hyphens", []string{
		"hyphens-auto", "hyphens-manual", "hyphens-none",
	}},
	{"whitespace", []string{
		"whitespace-normal", "whitespace-nowrap", "whitespace-pre",
	}},
	{"word break", []string{
		"break-words", "break-all", "break-keep",
	}},
	{"text decoration", []string{
		"underline", "overline", "line-through", "no-underline", "decoration-double", "decoration-solid",
	}},
	{"font variant numeric", []string{
		"tabular-nums", "slashed-zero", "lining-nums", "oldstyle-nums",
	}},
	{"svg", []string{
		"stroke-1", "stroke-2", "stroke-black", "fill-blue-500", "fill-current",
	}},
	{"screen reader", []string{
		"sr-only", "not-sr-only",
	}},
}
